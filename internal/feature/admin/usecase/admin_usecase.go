// Package usecase implements the read-only admin views: dashboard counts and
// full listings of users, appointments and feedback.
package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	apptentity "clinic_backend/internal/feature/appointment/domain/entity"
	authentity "clinic_backend/internal/feature/auth/domain/entity"
	fbentity "clinic_backend/internal/feature/feedback/domain/entity"
)

// UserStore lists and counts users.
type UserStore interface {
	List(ctx context.Context) ([]authentity.User, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

// AppointmentStore lists and counts appointments.
type AppointmentStore interface {
	List(ctx context.Context) ([]apptentity.Appointment, error)
	Count(ctx context.Context) (int64, error)
}

// DoctorCounter counts doctors.
type DoctorCounter interface {
	Count(ctx context.Context) (int64, error)
}

// FeedbackLister lists feedback.
type FeedbackLister interface {
	List(ctx context.Context) ([]fbentity.Feedback, error)
}

// Stats is the dashboard summary.
type Stats struct {
	Patients     int64
	Appointments int64
	Doctors      int64
}

// AdminUsecase provides the admin dashboard operations.
type AdminUsecase struct {
	users        UserStore
	appointments AppointmentStore
	doctors      DoctorCounter
	feedback     FeedbackLister
}

// NewAdminUsecase creates a new AdminUsecase.
func NewAdminUsecase(users UserStore, appointments AppointmentStore, doctors DoctorCounter, feedback FeedbackLister) *AdminUsecase {
	return &AdminUsecase{users: users, appointments: appointments, doctors: doctors, feedback: feedback}
}

// Stats returns the number of patients, appointments (cancelled included) and doctors.
// The three counts run concurrently; the first failure cancels the rest.
func (u *AdminUsecase) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := u.users.CountByRole(ctx, authentity.RolePatient)
		if err != nil {
			return fmt.Errorf("count patients: %w", err)
		}
		s.Patients = n
		return nil
	})
	g.Go(func() error {
		n, err := u.appointments.Count(ctx)
		if err != nil {
			return fmt.Errorf("count appointments: %w", err)
		}
		s.Appointments = n
		return nil
	})
	g.Go(func() error {
		n, err := u.doctors.Count(ctx)
		if err != nil {
			return fmt.Errorf("count doctors: %w", err)
		}
		s.Doctors = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	return s, nil
}

// Users returns every user, newest first.
func (u *AdminUsecase) Users(ctx context.Context) ([]authentity.User, error) {
	return u.users.List(ctx)
}

// Appointments returns every appointment, newest first.
func (u *AdminUsecase) Appointments(ctx context.Context) ([]apptentity.Appointment, error) {
	return u.appointments.List(ctx)
}

// Feedback returns every feedback entry, newest first.
func (u *AdminUsecase) Feedback(ctx context.Context) ([]fbentity.Feedback, error) {
	return u.feedback.List(ctx)
}
