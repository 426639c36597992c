package actor

import "errors"

var (
	// ErrActorNotFound indicates the actor doesn't exist.
	ErrActorNotFound = errors.New("actor not found")
	// ErrInvalidInput indicates invalid actor input.
	ErrInvalidInput = errors.New("invalid actor input")
)
