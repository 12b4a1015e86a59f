// Package usecase implements booking, listing and cancellation of appointments.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clinic_backend/internal/feature/appointment/domain/entity"
	authentity "clinic_backend/internal/feature/auth/domain/entity"
	authusecase "clinic_backend/internal/feature/auth/usecase"
	doctorentity "clinic_backend/internal/feature/doctor/domain/entity"
	doctorusecase "clinic_backend/internal/feature/doctor/usecase"
)

// AppointmentRepository abstracts the persistence layer for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, a *entity.Appointment) error
	FindByID(ctx context.Context, id string) (*entity.Appointment, error)
	Update(ctx context.Context, a *entity.Appointment) error
	ListByPatient(ctx context.Context, patientID string) ([]entity.Appointment, error)
	List(ctx context.Context) ([]entity.Appointment, error)
}

// DoctorFinder looks up the doctor being booked.
type DoctorFinder interface {
	FindByID(ctx context.Context, id string) (*doctorentity.Doctor, error)
}

// UserFinder looks up the patient making the booking.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*authentity.User, error)
}

// BookInput holds the validated booking request.
type BookInput struct {
	DoctorID string
	Date     string
	Time     string
	Symptoms string
	Phone    string
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID string
	Role   string
}

func (a Actor) isAdmin() bool {
	return a.Role == authentity.RoleAdmin
}

// AppointmentUsecase provides business logic for appointments.
type AppointmentUsecase struct {
	repo    AppointmentRepository
	doctors DoctorFinder
	users   UserFinder
}

// NewAppointmentUsecase creates a new AppointmentUsecase.
func NewAppointmentUsecase(repo AppointmentRepository, doctors DoctorFinder, users UserFinder) *AppointmentUsecase {
	return &AppointmentUsecase{repo: repo, doctors: doctors, users: users}
}

// Book creates a confirmed appointment for the patient, copying the doctor's
// name and specialty and the patient's name onto the record.
func (u *AppointmentUsecase) Book(ctx context.Context, patientID string, in BookInput) (*entity.Appointment, error) {
	doctor, err := u.doctors.FindByID(ctx, in.DoctorID)
	if err != nil {
		if errors.Is(err, doctorusecase.ErrDoctorNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to load doctor: %w", err)
	}
	patient, err := u.users.FindByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to load patient: %w", err)
	}

	a := &entity.Appointment{
		DoctorID:    doctor.ID,
		PatientID:   patient.ID,
		DoctorName:  doctor.Name,
		Specialty:   doctor.Specialty,
		PatientName: patient.Name,
		Date:        in.Date,
		Time:        in.Time,
		Symptoms:    strings.TrimSpace(in.Symptoms),
		Phone:       in.Phone,
		Status:      entity.StatusConfirmed,
	}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// ListMine returns the patient's own appointments, newest first.
func (u *AppointmentUsecase) ListMine(ctx context.Context, patientID string) ([]entity.Appointment, error) {
	return u.repo.ListByPatient(ctx, patientID)
}

// ListAll returns every appointment, newest first.
func (u *AppointmentUsecase) ListAll(ctx context.Context) ([]entity.Appointment, error) {
	return u.repo.List(ctx)
}

// Cancel marks the appointment cancelled. Only the owning patient or an admin
// may cancel. Cancelling an already cancelled appointment returns it unchanged.
func (u *AppointmentUsecase) Cancel(ctx context.Context, actor Actor, id string) (*entity.Appointment, error) {
	a, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.PatientID != actor.UserID && !actor.isAdmin() {
		return nil, ErrForbidden
	}
	if a.IsCancelled() {
		return a, nil
	}
	a.Status = entity.StatusCancelled
	if err := u.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
