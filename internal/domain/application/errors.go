package application

import "errors"

var (
	// ErrApplicationNotFound indicates the application doesn't exist.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrInvalidInput indicates invalid application input.
	ErrInvalidInput = errors.New("invalid application input")
	// ErrInvalidBid indicates the bid amount is not a positive number.
	ErrInvalidBid = errors.New("bid amount must be a positive number")
	// ErrAlreadyDecided indicates a decision on an application that is
	// no longer pending.
	ErrAlreadyDecided = errors.New("application already decided")
	// ErrNotProjectOwner indicates the decider does not own the
	// project the application targets.
	ErrNotProjectOwner = errors.New("only the project owner may decide applications")
)
