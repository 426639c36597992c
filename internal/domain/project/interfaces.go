package project

import "context"

// Repository provides persistence for projects. List and Search return
// projects newest-first; a freshly created project is always the head
// of the next listing.
type Repository interface {
	Create(ctx context.Context, proj *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	Search(ctx context.Context, filter SearchFilter) ([]Project, error)
}
