package sqlite

import (
	"context"
	"testing"

	"github.com/raedalharbi/muqawil/internal/domain/activity"
	"github.com/stretchr/testify/require"
)

func logTestEntry(t *testing.T, repo *ActivityRepository, typ activity.Type, projectID, summary string) *activity.Entry {
	t.Helper()

	entry := &activity.Entry{Type: typ, Summary: summary}
	if projectID != "" {
		entry.ProjectID = &projectID
	}
	require.NoError(t, repo.Log(context.Background(), entry))
	return entry
}

func TestActivityRepository_Log(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActivityRepository(db)

	entry := logTestEntry(t, repo, activity.TypeProjectPosted, "p1", "تم نشر مشروع جديد")
	require.NotZero(t, entry.ID)
	require.False(t, entry.CreatedAt.IsZero())
}

func TestActivityRepository_ListNewestFirst(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActivityRepository(db)

	first := logTestEntry(t, repo, activity.TypeProjectPosted, "p1", "first")
	second := logTestEntry(t, repo, activity.TypeApplicationSubmitted, "p1", "second")

	entries, err := repo.List(context.Background(), activity.ListOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, second.ID, entries[0].ID)
	require.Equal(t, first.ID, entries[1].ID)
}

func TestActivityRepository_ListFilterAndLimit(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	logTestEntry(t, repo, activity.TypeProjectPosted, "p1", "one")
	logTestEntry(t, repo, activity.TypeApplicationSubmitted, "p2", "two")
	logTestEntry(t, repo, activity.TypeApplicationDecided, "p1", "three")

	entries, err := repo.List(ctx, activity.ListOptions{ProjectID: "p1"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "three", entries[0].Summary)
	require.Equal(t, "one", entries[1].Summary)

	entries, err = repo.List(ctx, activity.ListOptions{Limit: 1})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "three", entries[0].Summary)
}
