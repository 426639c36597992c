package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/raedalharbi/muqawil/internal/domain/actor"
	"github.com/raedalharbi/muqawil/internal/repository"
	"github.com/stretchr/testify/require"
)

func newTestActor(id string, role actor.Role) *actor.Actor {
	return &actor.Actor{
		ID:        id,
		Name:      "Test Actor " + id,
		Role:      role,
		Email:     id + "@example.com",
		CreatedAt: time.Now(),
	}
}

func TestActorRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActorRepository(db)
	ctx := context.Background()

	act := newTestActor("sub1", actor.RoleSubcontractor)
	act.Trade = actor.TradeElectrical
	act.Experience = actor.ExperienceExpert
	act.Certifications = []string{"تصنيف فئة أولى", "ISO 9001"}
	act.Rating = 4.8
	act.Location = "الرياض"

	require.NoError(t, repo.Create(ctx, act))

	got, err := repo.Get(ctx, "sub1")
	require.NoError(t, err)
	require.Equal(t, act.Name, got.Name)
	require.Equal(t, actor.RoleSubcontractor, got.Role)
	require.Equal(t, actor.TradeElectrical, got.Trade)
	require.Equal(t, actor.ExperienceExpert, got.Experience)
	require.Equal(t, []string{"تصنيف فئة أولى", "ISO 9001"}, got.Certifications)
	require.Equal(t, 4.8, got.Rating)
}

func TestActorRepository_GetNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActorRepository(db)

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestActorRepository_Update(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActorRepository(db)
	ctx := context.Background()

	act := newTestActor("sub1", actor.RoleSubcontractor)
	require.NoError(t, repo.Create(ctx, act))

	act.Name = "Updated Name"
	act.Bio = "New bio"
	act.Trade = actor.TradePlumbing
	require.NoError(t, repo.Update(ctx, act))

	got, err := repo.Get(ctx, "sub1")
	require.NoError(t, err)
	require.Equal(t, "Updated Name", got.Name)
	require.Equal(t, "New bio", got.Bio)
	require.Equal(t, actor.TradePlumbing, got.Trade)
}

func TestActorRepository_UpdateNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActorRepository(db)

	err := repo.Update(context.Background(), newTestActor("missing", actor.RoleSubcontractor))
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestActorRepository_SearchDirectory(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActorRepository(db)
	ctx := context.Background()

	sub1 := newTestActor("sub1", actor.RoleSubcontractor)
	sub1.Name = "مؤسسة التميز للكهرباء"
	sub1.Trade = actor.TradeElectrical
	sub1.Location = "الرياض"
	require.NoError(t, repo.Create(ctx, sub1))

	sub2 := newTestActor("sub2", actor.RoleSubcontractor)
	sub2.Name = "شركة روافد للسباكة"
	sub2.Trade = actor.TradePlumbing
	sub2.Location = "جدة"
	require.NoError(t, repo.Create(ctx, sub2))

	// Main contractors never appear in the directory.
	mc := newTestActor("user1", actor.RoleMainContractor)
	require.NoError(t, repo.Create(ctx, mc))

	t.Run("empty filter returns all subcontractors in order", func(t *testing.T) {
		actors, err := repo.SearchDirectory(ctx, actor.DirectoryFilter{})
		require.NoError(t, err)
		require.Len(t, actors, 2)
		require.Equal(t, "sub1", actors[0].ID)
		require.Equal(t, "sub2", actors[1].ID)
	})

	t.Run("name substring match", func(t *testing.T) {
		actors, err := repo.SearchDirectory(ctx, actor.DirectoryFilter{Query: "روافد"})
		require.NoError(t, err)
		require.Len(t, actors, 1)
		require.Equal(t, "sub2", actors[0].ID)
	})

	t.Run("location substring match", func(t *testing.T) {
		actors, err := repo.SearchDirectory(ctx, actor.DirectoryFilter{Query: "الرياض"})
		require.NoError(t, err)
		require.Len(t, actors, 1)
		require.Equal(t, "sub1", actors[0].ID)
	})

	t.Run("trade filter is exact", func(t *testing.T) {
		actors, err := repo.SearchDirectory(ctx, actor.DirectoryFilter{Trade: actor.TradePlumbing})
		require.NoError(t, err)
		require.Len(t, actors, 1)
		require.Equal(t, "sub2", actors[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		actors, err := repo.SearchDirectory(ctx, actor.DirectoryFilter{Query: "لا يوجد"})
		require.NoError(t, err)
		require.Empty(t, actors)
	})
}

func TestActorRepository_SearchDirectoryCaseInsensitive(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActorRepository(db)
	ctx := context.Background()

	sub := newTestActor("sub1", actor.RoleSubcontractor)
	sub.Name = "Alpha Contracting"
	require.NoError(t, repo.Create(ctx, sub))

	actors, err := repo.SearchDirectory(ctx, actor.DirectoryFilter{Query: "ALPHA"})
	require.NoError(t, err)
	require.Len(t, actors, 1)
	require.Equal(t, "sub1", actors[0].ID)
}
