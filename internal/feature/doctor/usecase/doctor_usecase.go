// Package usecase implements the business logic for the doctor directory.
package usecase

import (
	"context"
	"strings"

	"clinic_backend/internal/feature/doctor/domain/entity"
)

// DoctorRepository abstracts the persistence layer for doctors.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type DoctorRepository interface {
	List(ctx context.Context, f entity.Filter) ([]entity.Doctor, error)
	FindByID(ctx context.Context, id string) (*entity.Doctor, error)
	Create(ctx context.Context, d *entity.Doctor) error
	Count(ctx context.Context) (int64, error)
}

// CreateInput holds the fields an admin supplies for a new doctor.
type CreateInput struct {
	Name         string
	Specialty    string
	Rating       float64
	Reviews      int
	Location     string
	Availability string
	Fee          int
	Image        string
}

// DoctorUsecase provides business logic for doctor operations.
type DoctorUsecase struct {
	repo DoctorRepository
}

// NewDoctorUsecase creates a new DoctorUsecase with the given repository.
func NewDoctorUsecase(r DoctorRepository) *DoctorUsecase {
	return &DoctorUsecase{repo: r}
}

// List returns doctors matching the filter. An empty filter returns every doctor.
func (u *DoctorUsecase) List(ctx context.Context, f entity.Filter) ([]entity.Doctor, error) {
	f.Specialty = strings.TrimSpace(f.Specialty)
	f.Search = strings.TrimSpace(f.Search)
	return u.repo.List(ctx, f)
}

// Get returns a single doctor or ErrDoctorNotFound.
func (u *DoctorUsecase) Get(ctx context.Context, id string) (*entity.Doctor, error) {
	return u.repo.FindByID(ctx, id)
}

// Create persists a new doctor.
func (u *DoctorUsecase) Create(ctx context.Context, in CreateInput) (*entity.Doctor, error) {
	d := &entity.Doctor{
		Name:         strings.TrimSpace(in.Name),
		Specialty:    strings.TrimSpace(in.Specialty),
		Rating:       in.Rating,
		Reviews:      in.Reviews,
		Location:     in.Location,
		Availability: in.Availability,
		Fee:          in.Fee,
		Image:        in.Image,
	}
	if err := u.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
