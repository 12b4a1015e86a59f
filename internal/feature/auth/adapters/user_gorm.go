// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clinic_backend/internal/feature/auth/domain/entity"
	"clinic_backend/internal/feature/auth/usecase"
	"clinic_backend/internal/platform/db"
)

// コンパイル時にインターフェース実装を検証
var _ usecase.UserRepository = (*userRepository)(nil)

// userRepository はGORMによるUserRepositoryの実装です。
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository はuserRepositoryの新しいインスタンスを生成します。
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

// Create は新しいユーザーをデータベースに保存します。
// 一意制約違反は usecase.ErrEmailAlreadyExists に変換されます。
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail はメールアドレスでユーザーを検索します。
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID はIDでユーザーを検索します。
func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List は全ユーザーを登録日時の新しい順に返します。
func (r *userRepository) List(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).Order("joined_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CountByRole は指定ロールのユーザー数を返します。
func (r *userRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Where("role = ?", role).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
