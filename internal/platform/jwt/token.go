// Package jwtmw はアクセストークン・リフレッシュトークンの発行と検証、
// およびGin用の認証ミドルウェアを提供します。
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TokenTypeAccess はアクセストークンのtypクレーム値です。
	TokenTypeAccess = "access"
	// TokenTypeRefresh はリフレッシュトークンのtypクレーム値です。
	TokenTypeRefresh = "refresh"
)

var (
	// ErrInvalidToken はアクセストークンが欠落・不正・期限切れの場合に返されます。
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrInvalidRefreshToken はリフレッシュトークンが不正・期限切れの場合に返されます。
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// Claims はトークンに署名されるクレームです。
type Claims struct {
	Role      string `json:"role"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// UserID はsubクレームに格納されたユーザーIDを返します。
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenPair は発行されたアクセストークンとリフレッシュトークンの組です。
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Service はトークン種別ごとに異なるシークレットで署名・検証を行います。
type Service struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewService は新しいトークンサービスを生成します。
func NewService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// IssuePair はユーザーIDとロールを含むトークンペアを発行します。
func (s *Service) IssuePair(userID, role string) (TokenPair, error) {
	access, err := s.IssueAccess(userID, role)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.sign(userID, role, TokenTypeRefresh, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// IssueAccess はアクセストークンのみを発行します。
func (s *Service) IssueAccess(userID, role string) (string, error) {
	return s.sign(userID, role, TokenTypeAccess, s.accessTTL, s.accessSecret)
}

// VerifyAccess はアクセストークンを検証しクレームを返します。
func (s *Service) VerifyAccess(token string) (*Claims, error) {
	claims, err := s.parse(token, TokenTypeAccess, s.accessSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

// VerifyRefresh はリフレッシュトークンを検証しクレームを返します。
func (s *Service) VerifyRefresh(token string) (*Claims, error) {
	claims, err := s.parse(token, TokenTypeRefresh, s.refreshSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRefreshToken, err)
	}
	return claims, nil
}

// Refresh は有効なリフレッシュトークンのクレームから新しいアクセストークンを署名します。
// リフレッシュトークン自体はローテーションも失効もしません。
func (s *Service) Refresh(refreshToken string) (string, error) {
	claims, err := s.VerifyRefresh(refreshToken)
	if err != nil {
		return "", err
	}
	return s.IssueAccess(claims.Subject, claims.Role)
}

func (s *Service) sign(userID, role, typ string, ttl time.Duration, secret []byte) (string, error) {
	now := s.now()
	claims := Claims{
		Role:      role,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *Service) parse(tokenStr, typ string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		// HMAC以外の署名アルゴリズムは拒否
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	if claims.TokenType != typ {
		return nil, fmt.Errorf("unexpected token type %q", claims.TokenType)
	}
	if claims.Subject == "" {
		return nil, errors.New("missing subject")
	}
	return claims, nil
}
