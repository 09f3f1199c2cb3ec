package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDHeader = "X-Request-Id"
	requestIDKey    = "request_id"
	userIDKey       = "user_id"
)

// RequestID attaches a fresh request id to the context and echoes it in
// the response headers, reusing a caller-supplied one when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs one line per request; level tracks the status class.
func RequestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := c.Writer.Status()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString(requestIDKey),
		}

		switch {
		case status >= 500:
			log.Errorw("http request", fields...)
		case status >= 400:
			log.Warnw("http request", fields...)
		default:
			log.Infow("http request", fields...)
		}
	}
}

// requireAuth verifies the bearer token and stores the caller's user id in
// the request context.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing or invalid token"})
			return
		}

		userID, _, err := s.auth.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:]
	}
	return ""
}

func callerID(c *gin.Context) int64 {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}
