package services

import "errors"

var (
	// ErrNotFound is returned when a referenced document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateBooking is returned when a user already holds a booking
	// for the same treatment on the same date.
	ErrDuplicateBooking = errors.New("booking already exists")

	// ErrEmailTaken is returned when a user with the same email already
	// exists.
	ErrEmailTaken = errors.New("email already in use")
)
