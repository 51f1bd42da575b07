package clinic

import "errors"

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("clinic: record not found")

	// ErrInvalidRating is returned for feedback ratings outside 1..5.
	ErrInvalidRating = errors.New("clinic: rating must be between 1 and 5")

	// ErrSessionClosed is returned when completing or cancelling a session
	// that is no longer in the scheduled state.
	ErrSessionClosed = errors.New("clinic: session is not scheduled")
)
