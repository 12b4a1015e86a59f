package usecase

import "errors"

// ErrDoctorNotFound is returned when a doctor cannot be found by ID.
var ErrDoctorNotFound = errors.New("doctor not found")
