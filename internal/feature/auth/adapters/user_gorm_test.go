package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"clinic_backend/internal/feature/auth/domain/entity"
	"clinic_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		user := &entity.User{Name: "Ann", Email: "ann@example.com", Password: "hashed", Role: entity.RolePatient}
		err := repo.Create(context.Background(), user)

		require.NoError(t, err)
		assert.Len(t, user.ID, 36, "UUID is not set")
		assert.False(t, user.JoinedAt.IsZero(), "JoinedAt is not set")
	})

	t.Run("duplicate email maps to ErrEmailAlreadyExists", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		require.NoError(t, repo.Create(context.Background(), &entity.User{Name: "A", Email: "dup@example.com", Password: "p1"}))
		err := repo.Create(context.Background(), &entity.User{Name: "B", Email: "dup@example.com", Password: "p2"})

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})

	t.Run("explicit ID is kept", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		user := &entity.User{ID: "fixed-id", Name: "A", Email: "a@example.com", Password: "p"}
		require.NoError(t, repo.Create(context.Background(), user))

		assert.Equal(t, "fixed-id", user.ID)
	})
}

func TestUserRepository_Find(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	user := &entity.User{Name: "Ann", Email: "ann@example.com", Password: "hashed", Role: entity.RolePatient}
	require.NoError(t, repo.Create(context.Background(), user))

	t.Run("FindByEmail", func(t *testing.T) {
		got, err := repo.FindByEmail(context.Background(), "ann@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "hashed", got.Password)

		_, err = repo.FindByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("FindByID", func(t *testing.T) {
		got, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ann", got.Name)

		_, err = repo.FindByID(context.Background(), "missing")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserRepository_ListAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	users := []*entity.User{
		{Name: "Old", Email: "old@example.com", Password: "p", Role: entity.RolePatient, JoinedAt: base},
		{Name: "Admin", Email: "admin@example.com", Password: "p", Role: entity.RoleAdmin, JoinedAt: base.Add(time.Hour)},
		{Name: "New", Email: "new@example.com", Password: "p", Role: entity.RolePatient, JoinedAt: base.Add(2 * time.Hour)},
	}
	for _, u := range users {
		require.NoError(t, repo.Create(ctx, u))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "New", list[0].Name)
	assert.Equal(t, "Old", list[2].Name)

	patients, err := repo.CountByRole(ctx, entity.RolePatient)
	require.NoError(t, err)
	assert.EqualValues(t, 2, patients)

	admins, err := repo.CountByRole(ctx, entity.RoleAdmin)
	require.NoError(t, err)
	assert.EqualValues(t, 1, admins)
}
