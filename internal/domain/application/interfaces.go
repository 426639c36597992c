package application

import (
	"context"

	"github.com/raedalharbi/muqawil/internal/domain/project"
)

// Repository provides persistence for applications. Listings preserve
// insertion order (oldest bid first).
type Repository interface {
	Create(ctx context.Context, app *Application) error
	Get(ctx context.Context, id string) (*Application, error)
	// UpdateDecision persists a status transition together with the
	// decider and decision time.
	UpdateDecision(ctx context.Context, app *Application) error
	ListForProject(ctx context.Context, projectID string, filter ListFilter) ([]Application, error)
	ListForActor(ctx context.Context, actorID string) ([]Application, error)
}

// ProjectRepository is the slice of the project registry the
// application service needs to resolve bid targets.
type ProjectRepository interface {
	Get(ctx context.Context, id string) (*project.Project, error)
}
