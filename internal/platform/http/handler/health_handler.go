// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger はデータストアの疎通確認を行います。*sql.DBが満たします。
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Health は /healthz エンドポイントを処理するハンドラーを返します。
// pingerがnilでなければデータベースの疎通も確認し、失敗時は503を返します。
func Health(pinger Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		status, body := http.StatusOK, gin.H{"status": "ok"}
		if pinger != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := pinger.PingContext(ctx); err != nil {
				slog.Error("health check: database unreachable", "error", err)
				status, body = http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"}
			}
		}

		if c.Request.Method == http.MethodHead {
			c.Status(status)
			return
		}
		c.JSON(status, body)
	}
}
