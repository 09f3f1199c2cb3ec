package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/joho/godotenv"

	"haulflow/auth"
	"haulflow/db"
	"haulflow/httpapi"
	"haulflow/logger"
	"haulflow/offer"
	"haulflow/proposal"
	"haulflow/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	zlog, err := logger.New(getEnv("LOG_MODE", "dev"))
	if err != nil {
		log.Fatalf("bootstrap logger: %v", err)
	}
	defer zlog.Sync()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		zlog.Fatal("JWT_SECRET is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		zlog.Fatalw("bootstrap id node", "error", err)
	}

	ctx := context.Background()

	var backend store.Store
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		pool, err := db.NewPool(ctx, dsn)
		if err != nil {
			zlog.Fatalw("bootstrap database pool", "error", err)
		}
		defer pool.Close()

		pg := store.NewPGStore(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			zlog.Fatalw("ensure snapshot schema", "error", err)
		}
		backend = pg
		zlog.Infow("snapshot store", "backend", "postgres")
	} else {
		path := getEnv("DB_PATH", "db.json")
		backend = store.NewFileStore(path)
		zlog.Infow("snapshot store", "backend", "file", "path", path)
	}

	serial := store.NewSerial(backend)

	ttl := time.Duration(getEnvInt("TOKEN_TTL_MINUTES", 100)) * time.Minute
	authSvc := auth.NewService(auth.NewStoreRepository(serial, node), secret, ttl)
	proposalSvc := proposal.NewService(serial, node)
	offerSvc := offer.NewService(serial, node)

	router := httpapi.NewRouter(authSvc, proposalSvc, offerSvc, zlog)

	addr := ":" + getEnv("PORT", "5001")
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	zlog.Infow("listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil {
		zlog.Fatalw("server stopped", "error", err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return n
}
