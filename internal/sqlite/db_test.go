package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	// Verify all tables were created
	tables := []string{
		"actors",
		"projects",
		"applications",
		"sessions",
		"activity_log",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

// TestApplicationsTable verifies the applications table constraints
func TestApplicationsTable(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO projects (id, title, description, budget, budget_formatted, location, deadline, category, posted_by, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		"p1", "Villa", "Finishing works", 500000.0, "500,000 ريال", "الرياض", "2026-10-01", "تشطيبات", "user1", "OPEN")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO applications (id, project_id, subcontractor_id, subcontractor_name, bid_amount, proposal, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		"a1", "p1", "sub1", "Bidder", 450000.0, "Proposal", "PENDING")
	require.NoError(t, err)

	// Foreign key constraint - should fail with invalid project_id
	_, err = db.ExecContext(ctx,
		`INSERT INTO applications (id, project_id, subcontractor_id, subcontractor_name, bid_amount, proposal, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		"a2", "missing", "sub1", "Bidder", 450000.0, "Proposal", "PENDING")
	require.Error(t, err, "should fail with invalid project_id")

	// Status constraint - should fail with invalid status
	_, err = db.ExecContext(ctx,
		`INSERT INTO applications (id, project_id, subcontractor_id, subcontractor_name, bid_amount, proposal, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		"a3", "p1", "sub1", "Bidder", 450000.0, "Proposal", "MAYBE")
	require.Error(t, err, "should fail with invalid status")
}

// TestProjectsStatusConstraint verifies the projects status check
func TestProjectsStatusConstraint(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO projects (id, title, description, budget, budget_formatted, location, deadline, category, posted_by, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		"p1", "Villa", "Finishing works", 500000.0, "500,000 ريال", "الرياض", "2026-10-01", "تشطيبات", "user1", "CANCELLED")
	require.Error(t, err, "should fail with invalid status")
}
