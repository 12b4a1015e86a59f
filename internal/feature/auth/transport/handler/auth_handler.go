// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic_backend/internal/feature/auth/domain/entity"
	"clinic_backend/internal/feature/auth/transport/http/dto"
	"clinic_backend/internal/feature/auth/usecase"
	"clinic_backend/internal/platform/http/response"
	jwtmw "clinic_backend/internal/platform/jwt"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error)
	Login(ctx context.Context, email, password string) (*usecase.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Me(ctx context.Context, userID string) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー、パスワード不一致時は400
// - メール重複時は409
// - 成功時はトークンペアとユーザー情報付きで201
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	res, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPasswordMismatch):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("register conflict", "remote_addr", c.ClientIP())
			response.Error(c, http.StatusConflict, "user already exists")
		default:
			response.Internal(c, err)
		}
		return
	}
	slog.Info("user registered", "user_id", res.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, toAuthRes(res))
}

// Login はユーザーログインAPIエンドポイントを処理します。
// 未登録メールとパスワード不一致は同じ401を返します。
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
			slog.Warn("login failed", "remote_addr", c.ClientIP())
			response.Error(c, http.StatusUnauthorized, usecase.ErrInvalidCredentials.Error())
			return
		}
		response.Internal(c, err)
		return
	}
	slog.Info("user login successful", "user_id", res.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, toAuthRes(res))
}

// Refresh はリフレッシュトークンから新しいアクセストークンを発行します。
// トークンが無効な場合は403を返します。
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	access, err := h.auth.Refresh(c.Request.Context(), req.Token)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRefreshToken) {
			slog.Warn("refresh rejected", "error", err, "remote_addr", c.ClientIP())
			response.Error(c, http.StatusForbidden, usecase.ErrInvalidRefreshToken.Error())
			return
		}
		response.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RefreshRes{AccessToken: access})
}

// Me は認証済みユーザー自身のプロフィールを返します。
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "missing bearer token")
		return
	}
	user, err := h.auth.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, err.Error())
			return
		}
		response.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPublicUser(user))
}

func toAuthRes(res *usecase.AuthResult) dto.AuthRes {
	return dto.AuthRes{
		AccessToken:  res.Tokens.AccessToken,
		RefreshToken: res.Tokens.RefreshToken,
		User:         dto.NewPublicUser(res.User),
	}
}
