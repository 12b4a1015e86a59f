package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authadapters "clinic_backend/internal/feature/auth/adapters"
	authentity "clinic_backend/internal/feature/auth/domain/entity"
	doctoradapters "clinic_backend/internal/feature/doctor/adapters"
	doctorentity "clinic_backend/internal/feature/doctor/domain/entity"
	"clinic_backend/internal/platform/password"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")
	require.NoError(t, db.AutoMigrate(&authentity.User{}, &doctorentity.Doctor{}))

	return db
}

func newDeps(db *gorm.DB) Deps {
	return Deps{
		Doctors: doctoradapters.NewDoctorRepository(db),
		Users:   authadapters.NewUserRepository(db),
		Hasher:  password.NewHasher(4),
		Admin:   Admin{Email: "Admin@Clinic.local", Password: "admin123", Name: "Administrator"},
	}
}

func TestRun_IsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	deps := newDeps(db)
	ctx := context.Background()

	require.NoError(t, Run(ctx, deps))
	require.NoError(t, Run(ctx, deps))

	var doctors []doctorentity.Doctor
	require.NoError(t, db.Find(&doctors).Error)
	assert.Len(t, doctors, 8)

	specialties := map[string]bool{}
	for _, d := range doctors {
		specialties[d.Specialty] = true
	}
	for _, s := range []string{"Cardiology", "Dermatology", "Neurology", "Pediatrics", "Orthopedics", "General Medicine"} {
		assert.True(t, specialties[s], "missing specialty %s", s)
	}

	var admins []authentity.User
	require.NoError(t, db.Where("role = ?", authentity.RoleAdmin).Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "admin@clinic.local", admins[0].Email)
	assert.True(t, password.NewHasher(4).Verify("admin123", admins[0].Password))
}

func TestRun_ExistingDoctorsAreLeftAlone(t *testing.T) {
	db := setupTestDB(t)
	deps := newDeps(db)
	ctx := context.Background()

	require.NoError(t, deps.Doctors.Create(ctx, &doctorentity.Doctor{Name: "Dr. Custom", Specialty: "Oncology"}))

	require.NoError(t, Run(ctx, deps))

	var n int64
	require.NoError(t, db.Model(&doctorentity.Doctor{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestRun_ExistingAdminEmailIsNotReplaced(t *testing.T) {
	db := setupTestDB(t)
	deps := newDeps(db)
	ctx := context.Background()

	existing := &authentity.User{Name: "Owner", Email: "admin@clinic.local", Password: "keep-me", Role: authentity.RolePatient}
	require.NoError(t, deps.Users.Create(ctx, existing))

	require.NoError(t, Run(ctx, deps))

	var u authentity.User
	require.NoError(t, db.Where("email = ?", "admin@clinic.local").First(&u).Error)
	assert.Equal(t, "keep-me", u.Password)
	assert.Equal(t, authentity.RolePatient, u.Role)
}

type failingDoctors struct{}

func (failingDoctors) Count(ctx context.Context) (int64, error) { return 0, errors.New("db down") }
func (failingDoctors) Create(ctx context.Context, d *doctorentity.Doctor) error {
	return nil
}

func TestRun_PropagatesErrors(t *testing.T) {
	deps := newDeps(setupTestDB(t))
	deps.Doctors = failingDoctors{}

	err := Run(context.Background(), deps)

	assert.ErrorContains(t, err, "count doctors")
}

func TestRoster_ReturnsFreshSlice(t *testing.T) {
	a := Roster()
	a[0].Name = "changed"
	assert.NotEqual(t, "changed", Roster()[0].Name)
	assert.Len(t, Roster(), 8)
}
