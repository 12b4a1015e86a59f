// Package seed は起動時の初期データ投入（医師名簿と管理者アカウント）を行います。
// 何度実行しても結果は変わりません。
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	authentity "clinic_backend/internal/feature/auth/domain/entity"
	authusecase "clinic_backend/internal/feature/auth/usecase"
	doctorentity "clinic_backend/internal/feature/doctor/domain/entity"
)

// DoctorStore は医師の件数確認と登録を行います。
type DoctorStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, d *doctorentity.Doctor) error
}

// UserStore は管理者アカウントの存在確認と登録を行います。
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*authentity.User, error)
	Create(ctx context.Context, u *authentity.User) error
}

// PasswordHasher は管理者パスワードをハッシュ化します。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// Admin は初期管理者の資格情報です。
type Admin struct {
	Email    string
	Password string
	Name     string
}

// Deps はRunの依存関係です。
type Deps struct {
	Doctors DoctorStore
	Users   UserStore
	Hasher  PasswordHasher
	Admin   Admin
}

// Run は医師が0件なら名簿を投入し、管理者が存在しなければ作成します。
func Run(ctx context.Context, d Deps) error {
	if err := seedDoctors(ctx, d.Doctors); err != nil {
		return err
	}
	return seedAdmin(ctx, d.Users, d.Hasher, d.Admin)
}

func seedDoctors(ctx context.Context, store DoctorStore) error {
	n, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("count doctors: %w", err)
	}
	if n > 0 {
		slog.Debug("doctors already present; skipping roster", "count", n)
		return nil
	}
	for _, doc := range Roster() {
		if err := store.Create(ctx, &doc); err != nil {
			return fmt.Errorf("seed doctor %q: %w", doc.Name, err)
		}
	}
	slog.Info("seeded doctor roster", "count", len(Roster()))
	return nil
}

func seedAdmin(ctx context.Context, users UserStore, hasher PasswordHasher, admin Admin) error {
	email := authusecase.NormalizeEmail(admin.Email)
	if email == "" {
		slog.Warn("ADMIN_EMAIL empty; skipping admin seed")
		return nil
	}
	_, err := users.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, authusecase.ErrUserNotFound) {
		return fmt.Errorf("look up admin: %w", err)
	}

	hashed, err := hasher.Hash(admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	u := &authentity.User{
		Name:     admin.Name,
		Email:    email,
		Password: hashed,
		Role:     authentity.RoleAdmin,
	}
	if err := users.Create(ctx, u); err != nil {
		// 複数インスタンスが同時に起動した場合
		if errors.Is(err, authusecase.ErrEmailAlreadyExists) {
			return nil
		}
		return fmt.Errorf("create admin: %w", err)
	}
	slog.Info("seeded admin account", "email", email)
	return nil
}
