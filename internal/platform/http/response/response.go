// Package response はハンドラー共通のエラーレスポンスを提供します。
package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic_backend/internal/platform/validation"
)

// ErrorResponse はすべてのエラーレスポンスの共通形式です。
type ErrorResponse struct {
	Error   string                  `json:"error"`
	Details []validation.FieldError `json:"details,omitempty"`
}

// Error は指定されたステータスとメッセージでエラーを返します。
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Error: msg})
}

// BadRequest はバインド・バリデーションエラーを400として返します。
// バリデーション違反がある場合はdetailsに全件を列挙します。
func BadRequest(c *gin.Context, err error) {
	slog.Warn("request validation failed", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "invalid request",
		Details: validation.Details(err),
	})
}

// Internal は予期しないエラーをログに残し、詳細を伏せた500を返します。
func Internal(c *gin.Context, err error) {
	slog.Error("internal error", "error", err, "path", c.FullPath(), "method", c.Request.Method)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
