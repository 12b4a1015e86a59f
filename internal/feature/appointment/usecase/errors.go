package usecase

import "errors"

var (
	// ErrAppointmentNotFound is returned when an appointment cannot be found by ID.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrDoctorNotFound is returned when booking references an unknown doctor.
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrPatientNotFound is returned when the authenticated user no longer exists.
	ErrPatientNotFound = errors.New("user not found")

	// ErrForbidden is returned when a non-admin tries to cancel someone else's appointment.
	ErrForbidden = errors.New("not allowed to modify this appointment")
)
