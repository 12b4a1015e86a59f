package jwtmw

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

// TestService_IssuePair は発行されたトークンペアが種別ごとに検証でき、クレームを保持することを検証します。
func TestService_IssuePair(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	pair, err := svc.IssuePair("user-1", "patient")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	access, err := svc.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", access.UserID())
	assert.Equal(t, "patient", access.Role)
	assert.Equal(t, TokenTypeAccess, access.TokenType)

	refresh, err := svc.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", refresh.UserID())
	assert.Equal(t, TokenTypeRefresh, refresh.TokenType)
}

// TestService_Expirations はアクセス15分・リフレッシュ7日の有効期限が設定されることを検証します。
func TestService_Expirations(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	fixed := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	pair, err := svc.IssuePair("user-1", "patient")
	require.NoError(t, err)

	access, err := svc.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(15*time.Minute).Unix(), access.ExpiresAt.Unix())

	refresh, err := svc.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(7*24*time.Hour).Unix(), refresh.ExpiresAt.Unix())
}

// TestService_VerifyAccess_Expired は有効期限を過ぎたアクセストークンが拒否されることを検証します。
func TestService_VerifyAccess_Expired(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }
	token, err := svc.IssueAccess("user-1", "patient")
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(16 * time.Minute) }
	_, err = svc.VerifyAccess(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

// TestService_TokenClassesAreNotInterchangeable はトークン種別を取り違えた場合に拒否されることを検証します。
func TestService_TokenClassesAreNotInterchangeable(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	pair, err := svc.IssuePair("user-1", "admin")
	require.NoError(t, err)

	_, err = svc.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.VerifyRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

// TestService_SameSecretStillChecksType は同一シークレット設定でもtypクレームで区別されることを検証します。
func TestService_SameSecretStillChecksType(t *testing.T) {
	t.Parallel()

	svc := NewService("shared", "shared", time.Minute, time.Hour)
	pair, err := svc.IssuePair("user-1", "patient")
	require.NoError(t, err)

	_, err = svc.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// TestService_Refresh はリフレッシュトークンから同じsub・roleのアクセストークンが得られることを検証します。
func TestService_Refresh(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	pair, err := svc.IssuePair("user-42", "admin")
	require.NoError(t, err)

	access, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.VerifyAccess(access)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID())
	assert.Equal(t, "admin", claims.Role)

	// リフレッシュトークンはローテーションされず、引き続き有効
	_, err = svc.Refresh(pair.RefreshToken)
	assert.NoError(t, err)
}

func TestService_Refresh_Invalid(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	_, err := svc.Refresh("garbage")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

// TestService_RejectsForeignTokens は異なるシークレット・noneアルゴリズム・sub欠落のトークンを拒否することを検証します。
func TestService_RejectsForeignTokens(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	wrongSecret, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		TokenType:        TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u", ExpiresAt: exp},
	}).SignedString([]byte("other-secret"))

	unsigned, _ := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		TokenType:        TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u", ExpiresAt: exp},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	noSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		TokenType:        TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
	}).SignedString([]byte("access-secret"))

	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		TokenType:        TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u"},
	}).SignedString([]byte("access-secret"))

	tests := []struct {
		name  string
		token string
	}{
		{"malformed", "not.a.token"},
		{"wrong secret", wrongSecret},
		{"none algorithm", unsigned},
		{"missing subject", noSubject},
		{"missing expiry", noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyAccess(tt.token)
			assert.True(t, errors.Is(err, ErrInvalidToken), "got %v", err)
		})
	}
}
