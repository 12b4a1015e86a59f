package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"clinic_backend/internal/app/di"
	"clinic_backend/internal/app/router"
	"clinic_backend/internal/app/seed"
	"clinic_backend/internal/platform/config"
	infradb "clinic_backend/internal/platform/db"
	"clinic_backend/internal/platform/password"
	infraredis "clinic_backend/internal/platform/redis"
)

const (
	devAccessSecret  = "dev-access-secret-change-me"
	devRefreshSecret = "dev-refresh-secret-change-me"
	shutdownTimeout  = 15 * time.Second
)

func main() {
	cfg := config.Load()
	slog.SetDefault(config.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat))

	// シークレット未設定チェック（開発中の注意喚起）
	if cfg.JWTAccessSecret == "" || cfg.JWTRefreshSecret == "" {
		slog.Warn("JWT_ACCESS_SECRET / JWT_REFRESH_SECRET not set; using development secrets. Set strong secrets in production.")
		if cfg.JWTAccessSecret == "" {
			cfg.JWTAccessSecret = devAccessSecret
		}
		if cfg.JWTRefreshSecret == "" {
			cfg.JWTRefreshSecret = devRefreshSecret
		}
	}

	// db
	db, err := infradb.Open(cfg, di.Models()...)
	if err != nil {
		slog.Error("database unavailable", "error", err)
		os.Exit(1)
	}

	// Redis（未設定・接続失敗時はキャッシュなしで動作）
	ctx := context.Background()
	rdb := infraredis.Connect(ctx, cfg)
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	app, err := di.NewApp(cfg, db, rdb, password.NewHasher(bcrypt.DefaultCost))
	if err != nil {
		slog.Error("failed to wire application", "error", err)
		os.Exit(1)
	}

	if err := seed.Run(ctx, app.Seed); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}

	// ルータ生成
	r := router.NewRouter(app.Handlers, app.Tokens, cfg.ClientOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	slog.Info("server stopped")
}
