// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// RegisterReq は/auth/registerエンドポイントのリクエストボディです。
// confirmPasswordの一致確認はユースケースで行います。
type RegisterReq struct {
	Name            string `json:"name" binding:"required,notblank,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required,phone"`
	Password        string `json:"password" binding:"required,min=6,bcryptlen"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// LoginReq は/auth/loginエンドポイントのリクエストボディです。
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshReq は/auth/refreshエンドポイントのリクエストボディです。
type RefreshReq struct {
	Token string `json:"token" binding:"required"`
}
