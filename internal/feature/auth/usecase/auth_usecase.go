// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clinic_backend/internal/feature/auth/domain/entity"
	jwtmw "clinic_backend/internal/platform/jwt"
)

// dummyHash はユーザーが存在しない場合にもbcrypt比較を行うためのダミーハッシュです。
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// PasswordHasher はパスワードのハッシュ化と検証を行います。
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenIssuer はトークンペアの発行とアクセストークンの再発行を行います。
type TokenIssuer interface {
	IssuePair(userID, role string) (jwtmw.TokenPair, error)
	Refresh(refreshToken string) (string, error)
}

// RegisterInput は新規登録の入力です。
type RegisterInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// AuthResult は登録・ログイン成功時に返すトークンとユーザーです。
type AuthResult struct {
	Tokens jwtmw.TokenPair
	User   *entity.User
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer) *authUsecase {
	return &authUsecase{users: users, hasher: hasher, tokens: tokens}
}

// NormalizeEmail は比較用にメールアドレスを正規化します。
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register はパスワード確認後に患者ユーザーを作成し、トークンペアを発行します。
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	email := NormalizeEmail(in.Email)

	// メールアドレスの重複チェック
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Phone:    in.Phone,
		Password: hashed,
		Role:     entity.RolePatient,
	}
	// 同時登録の競合はリポジトリ側の一意制約でErrEmailAlreadyExistsになる
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return u.issue(user)
}

// Login はユーザーを認証し、成功時にトークンペアを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := u.users.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	ok := u.hasher.Verify(password, passwordHash)

	// ユーザー未検出またはパスワード不一致の場合、同じエラーを返す
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	return u.issue(user)
}

// Refresh はリフレッシュトークンから新しいアクセストークンを発行します。
// パスワードの再確認やユーザー状態の再読込は行いません。
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	access, err := u.tokens.Refresh(refreshToken)
	if err != nil {
		if errors.Is(err, jwtmw.ErrInvalidRefreshToken) {
			return "", ErrInvalidRefreshToken
		}
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}
	return access, nil
}

// Me は認証済みユーザー自身の情報を返します。
func (u *authUsecase) Me(ctx context.Context, userID string) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

func (u *authUsecase) issue(user *entity.User) (*AuthResult, error) {
	pair, err := u.tokens.IssuePair(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResult{Tokens: pair, User: user}, nil
}
