package session

import "time"

// Status represents the lifecycle state of a signed-in session.
type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

// Session binds a bearer credential to the signed-in actor. Login is
// mocked: holding the session ID is the whole proof of identity.
type Session struct {
	ID        string     `json:"id"`
	ActorID   string     `json:"actorId"`
	Status    Status     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	ClosedAt  *time.Time `json:"closedAt,omitempty"`
}
