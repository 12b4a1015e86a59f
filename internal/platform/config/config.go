// Package config は環境変数からアプリケーション設定を読み込みます。
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultAccessTTL はアクセストークンのデフォルト有効期間です。
	DefaultAccessTTL = 15 * time.Minute
	// DefaultRefreshTTL はリフレッシュトークンのデフォルト有効期間（7日）です。
	DefaultRefreshTTL = 7 * 24 * time.Hour
	// DefaultDoctorCacheTTL は医師一覧キャッシュのデフォルトTTLです。
	DefaultDoctorCacheTTL = 5 * time.Minute
)

// Config はサーバー全体の設定値を保持します。
type Config struct {
	Port string

	DBDriver      string
	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	RunMigrations bool

	JWTAccessSecret  string
	JWTRefreshSecret string
	JWTAccessTTL     time.Duration
	JWTRefreshTTL    time.Duration

	ClientOrigins []string

	RedisHost      string
	RedisPort      string
	RedisPassword  string
	DoctorCacheTTL time.Duration

	AdminEmail    string
	AdminPassword string
	AdminName     string

	LogLevel  string
	LogFormat string
}

// Load は.envファイル（存在する場合）と環境変数から設定を読み込みます。
func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
	return FromEnv()
}

// FromEnv は現在の環境変数のみからConfigを構築します。
func FromEnv() Config {
	return Config{
		Port: getEnv("PORT", "8080"),

		DBDriver:      strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getEnv("DB_NAME", "clinic"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		RunMigrations: getEnv("RUN_MIGRATIONS", "true") == "true",

		JWTAccessSecret:  os.Getenv("JWT_ACCESS_SECRET"),
		JWTRefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
		JWTAccessTTL:     getDuration("JWT_ACCESS_TTL", DefaultAccessTTL),
		JWTRefreshTTL:    getDuration("JWT_REFRESH_TTL", DefaultRefreshTTL),

		ClientOrigins: splitList(getEnv("CLIENT_ORIGIN", "http://localhost:5173")),

		RedisHost:      os.Getenv("REDIS_HOST"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		DoctorCacheTTL: getDuration("DOCTOR_CACHE_TTL", DefaultDoctorCacheTTL),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@clinic.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		AdminName:     getEnv("ADMIN_NAME", "Administrator"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// RedisEnabled はRedisの接続先が設定されているかを返します。
func (c Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration は期間を読み込み、不正な値の場合はデフォルトにフォールバックします。
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration; using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
