package domain

import "errors"

var (
	// ErrNoUser is returned by write operations that need an
	// identified user. Reads degrade to "not interested" instead.
	ErrNoUser = errors.New("no user identified")

	// ErrToggleInFlight rejects a toggle for a (user, talk) pair that
	// already has an operation in flight.
	ErrToggleInFlight = errors.New("toggle already in flight for this talk")
)
