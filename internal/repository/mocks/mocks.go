package mocks

import (
	"context"

	"github.com/raedalharbi/muqawil/internal/domain/activity"
	"github.com/raedalharbi/muqawil/internal/domain/actor"
	"github.com/raedalharbi/muqawil/internal/domain/application"
	"github.com/raedalharbi/muqawil/internal/domain/project"
	"github.com/raedalharbi/muqawil/internal/domain/session"
	"github.com/stretchr/testify/mock"
)

// ActorRepository is a mock for actor.Repository.
type ActorRepository struct {
	mock.Mock
}

func (m *ActorRepository) Create(ctx context.Context, act *actor.Actor) error {
	args := m.Called(ctx, act)
	return args.Error(0)
}

func (m *ActorRepository) Get(ctx context.Context, id string) (*actor.Actor, error) {
	args := m.Called(ctx, id)
	if act, ok := args.Get(0).(*actor.Actor); ok {
		return act, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActorRepository) Update(ctx context.Context, act *actor.Actor) error {
	args := m.Called(ctx, act)
	return args.Error(0)
}

func (m *ActorRepository) SearchDirectory(ctx context.Context, filter actor.DirectoryFilter) ([]actor.Actor, error) {
	args := m.Called(ctx, filter)
	if list, ok := args.Get(0).([]actor.Actor); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Search(ctx context.Context, filter project.SearchFilter) ([]project.Project, error) {
	args := m.Called(ctx, filter)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ApplicationRepository is a mock for application.Repository.
type ApplicationRepository struct {
	mock.Mock
}

func (m *ApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *ApplicationRepository) Get(ctx context.Context, id string) (*application.Application, error) {
	args := m.Called(ctx, id)
	if app, ok := args.Get(0).(*application.Application); ok {
		return app, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ApplicationRepository) UpdateDecision(ctx context.Context, app *application.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *ApplicationRepository) ListForProject(ctx context.Context, projectID string, filter application.ListFilter) ([]application.Application, error) {
	args := m.Called(ctx, projectID, filter)
	if list, ok := args.Get(0).([]application.Application); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ApplicationRepository) ListForActor(ctx context.Context, actorID string) ([]application.Application, error) {
	args := m.Called(ctx, actorID)
	if list, ok := args.Get(0).([]application.Application); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SessionRepository is a mock for session.Repository.
type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Create(ctx context.Context, sess *session.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *SessionRepository) Get(ctx context.Context, id string) (*session.Session, error) {
	args := m.Called(ctx, id)
	if sess, ok := args.Get(0).(*session.Session); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SessionRepository) Close(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
