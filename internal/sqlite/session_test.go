package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/raedalharbi/muqawil/internal/domain/actor"
	"github.com/raedalharbi/muqawil/internal/domain/session"
	"github.com/raedalharbi/muqawil/internal/repository"
	"github.com/stretchr/testify/require"
)

func newTestSession(id, actorID string) *session.Session {
	return &session.Session{
		ID:        id,
		ActorID:   actorID,
		Status:    session.StatusActive,
		CreatedAt: time.Now(),
	}
}

func TestSessionRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	require.NoError(t, NewActorRepository(db).Create(ctx, newTestActor("user1", actor.RoleMainContractor)))
	require.NoError(t, repo.Create(ctx, newTestSession("s1", "user1")))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, "user1", got.ActorID)
	require.Equal(t, session.StatusActive, got.Status)
	require.Nil(t, got.ClosedAt)
}

func TestSessionRepository_CreateUnknownActor(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSessionRepository(db)

	err := repo.Create(context.Background(), newTestSession("s1", "missing"))
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}

func TestSessionRepository_Close(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	require.NoError(t, NewActorRepository(db).Create(ctx, newTestActor("user1", actor.RoleMainContractor)))
	require.NoError(t, repo.Create(ctx, newTestSession("s1", "user1")))

	require.NoError(t, repo.Close(ctx, "s1"))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, session.StatusClosed, got.Status)
	require.NotNil(t, got.ClosedAt)

	// Closing again finds no active row.
	require.ErrorIs(t, repo.Close(ctx, "s1"), repository.ErrNotFound)
}
