// Package logger builds the process-wide zap logger.
package logger

import (
	"strings"

	"go.uber.org/zap"
)

// New builds a sugared zap logger. Mode "prod"/"production" selects the
// JSON production config; anything else gets the development console config.
func New(mode string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}
