package model

import "errors"

var (
	// ErrNotFound is returned by stores when no document matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID is returned when an id is not in the store's native format.
	ErrInvalidID = errors.New("invalid id")
	// ErrUnauthorized is returned when the acting identity may not perform the operation.
	ErrUnauthorized = errors.New("unauthorized access")
)
