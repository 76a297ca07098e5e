package domain

import "errors"

var (
	// ErrInvalidInput rejects a booking draft or query before anything is
	// persisted. Wrapped with the offending field, e.g.
	// fmt.Errorf("%w: origin is required", ErrInvalidInput).
	ErrInvalidInput = errors.New("invalid input")

	// ErrSuiteTaken signals a confirmed reservation already holds the
	// suite for that travel date.
	ErrSuiteTaken = errors.New("suite already booked for travel date")

	ErrNotFound = errors.New("not found")
)
