package repository

import "errors"

// Sentinel errors surfaced by the repositories. Handlers discriminate
// with errors.Is; constraint violations are detected through the
// driver's error code, never by matching message text.
var (
	// ErrNotFound: an update or delete matched zero rows.
	ErrNotFound = errors.New("not found")

	// ErrUsernameTaken: insert hit the users.username unique constraint.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrSeatTaken: insert or update hit the (route_id, seat_number)
	// unique constraint.
	ErrSeatTaken = errors.New("seat already booked")
)
