package domain

import "errors"

var (
	ErrMissingID         = errors.New("link id is required")
	ErrBadRequest        = errors.New("bad request")
	ErrNotFound          = errors.New("link does not exist with the given id")
	ErrForbidden         = errors.New("unauthorized access")
	ErrInsufficientFunds = errors.New("insufficient credits")
	ErrInvalidActor      = errors.New("actor has no resolvable tenant")

	// ErrGeoRejected is returned when the geo service answers but refuses
	// the address (private or reserved ranges). Retrying does not help.
	ErrGeoRejected = errors.New("geo lookup rejected")
)
