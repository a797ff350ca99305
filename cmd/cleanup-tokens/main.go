// Command cleanup-tokens deletes token revocations whose tokens have
// already expired. It is intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/foodgram-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/foodgram-backend/internal/app"
	"github.com/heartmarshall/foodgram-backend/internal/auth"
	"github.com/heartmarshall/foodgram-backend/internal/config"
	authsvc "github.com/heartmarshall/foodgram-backend/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	svc := authsvc.NewService(logger, userrepo.New(pool), token.New(pool), jwt, cfg.Auth)

	if _, err := svc.CleanupExpiredTokens(ctx); err != nil {
		logger.Error("cleanup tokens failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
