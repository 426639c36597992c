package actor

import "context"

// Repository provides persistence for actors.
type Repository interface {
	Create(ctx context.Context, act *Actor) error
	Get(ctx context.Context, id string) (*Actor, error)
	Update(ctx context.Context, act *Actor) error
	SearchDirectory(ctx context.Context, filter DirectoryFilter) ([]Actor, error)
}
