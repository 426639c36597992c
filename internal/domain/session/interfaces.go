package session

import (
	"context"

	"github.com/raedalharbi/muqawil/internal/domain/actor"
)

// Repository provides persistence for sessions.
type Repository interface {
	Create(ctx context.Context, sess *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Close(ctx context.Context, id string) error
}

// ActorRepository is the slice of the actor registry the session
// service needs to resolve the signed-in actor.
type ActorRepository interface {
	Get(ctx context.Context, id string) (*actor.Actor, error)
}
