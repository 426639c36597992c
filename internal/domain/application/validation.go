package application

// ValidateDecision checks a requested status transition. Only a
// pending application may be decided, and only to ACCEPTED or
// REJECTED. A second decision on an already-decided application is
// rejected rather than overwritten.
func ValidateDecision(current Status, decision Decision) error {
	if decision != StatusAccepted && decision != StatusRejected {
		return ErrInvalidInput
	}
	if current != StatusPending {
		return ErrAlreadyDecided
	}
	return nil
}
