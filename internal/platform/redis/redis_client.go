// Package redis はRedisクライアントの生成を提供します。
package redis

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"clinic_backend/internal/platform/config"
)

const pingTimeout = 5 * time.Second

// NewRedisClient は設定からRedisクライアントを生成し、接続を確認します。
func NewRedisClient(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	addr := net.JoinHostPort(cfg.RedisHost, cfg.RedisPort)

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// 接続確認
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}

// Connect はRedisが設定されている場合のみ接続します。
// 未設定、または接続に失敗した場合はnilを返し、呼び出し側はキャッシュなしで動作します。
func Connect(ctx context.Context, cfg config.Config) *redis.Client {
	if !cfg.RedisEnabled() {
		slog.Info("REDIS_HOST not set; doctor cache disabled")
		return nil
	}
	rdb, err := NewRedisClient(ctx, cfg)
	if err != nil {
		slog.Warn("continuing without redis cache", "error", err)
		return nil
	}
	return rdb
}
