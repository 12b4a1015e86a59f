package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// ContextUserID はGinコンテキストに格納するユーザーIDのキーです。
	ContextUserID = "userID"
	// ContextRole はGinコンテキストに格納するロールのキーです。
	ContextRole = "role"
)

// AccessVerifier はアクセストークンを検証します。
type AccessVerifier interface {
	VerifyAccess(token string) (*Claims, error)
}

// AuthRequired はBearerトークンを検証し、認証済みユーザーのみを通過させるミドルウェアを返します。
func AuthRequired(v AccessVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Authorizationヘッダーを取得
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

		// 2. 署名と有効期限を検証
		claims, err := v.VerifyAccess(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 3. クレームをコンテキストへ
		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole はAuthRequiredの後段で、ロールが一致しない場合に403を返すミドルウェアです。
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if Role(c) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// UserID はコンテキストから認証済みユーザーIDを取り出します。
func UserID(c *gin.Context) (string, bool) {
	id := c.GetString(ContextUserID)
	return id, id != ""
}

// Role はコンテキストから認証済みユーザーのロールを取り出します。
func Role(c *gin.Context) string {
	return c.GetString(ContextRole)
}
