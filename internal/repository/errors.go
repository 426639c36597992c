package repository

import "errors"

var (
	// ErrNotFound indicates the requested entity doesn't exist.
	ErrNotFound = errors.New("not found")
	// ErrForeignKeyViolation indicates a referenced entity doesn't exist.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)
