package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	doctoradapters "clinic_backend/internal/feature/doctor/adapters"
	"clinic_backend/internal/feature/doctor/usecase"
	"clinic_backend/internal/platform/cache"
)

// NewDoctorRepository creates a DoctorRepository implementation.
// If Redis is available, the GORM repository is wrapped with the listing cache.
// Otherwise, the GORM repository is returned directly.
func NewDoctorRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.DoctorRepository {
	repo := doctoradapters.NewDoctorRepository(db)
	if rdb != nil {
		return cache.NewCachingDoctorRepository(rdb, ttl, repo, "doctors")
	}
	return repo
}
