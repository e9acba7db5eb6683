package models

import "errors"

var (
	// ErrNotFound is returned when an id-based lookup or mutation matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID is returned when a path id is not a valid object id.
	ErrInvalidID = errors.New("invalid id")

	// ErrUnauthorized is returned for missing, malformed, expired or revoked session tokens.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidDelta is returned when a counter increment of zero is requested.
	ErrInvalidDelta = errors.New("invalid increment")
)
