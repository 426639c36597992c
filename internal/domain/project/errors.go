package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrInvalidBudget indicates the budget is missing, unparseable or
	// not a positive number.
	ErrInvalidBudget = errors.New("budget must be a positive number")
)
