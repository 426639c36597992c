package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/raedalharbi/muqawil/internal/domain/activity"
)

// ActivityRepository implements activity.Repository for SQLite
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Log appends an entry to the activity log
func (r *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO activity_log (actor_id, project_id, application_id, activity_type, summary, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.ActorID,
		entry.ProjectID,
		entry.ApplicationID,
		entry.Type,
		entry.Summary,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get activity id: %w", err)
	}
	entry.ID = id

	return nil
}

// List returns activity entries, newest-first
func (r *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	query := `
		SELECT id, actor_id, project_id, application_id, activity_type, summary, created_at
		FROM activity_log
		WHERE 1=1
	`
	args := []interface{}{}

	if opts.ProjectID != "" {
		query += ` AND project_id = ?`
		args = append(args, opts.ProjectID)
	}

	query += ` ORDER BY id DESC`

	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var entry activity.Entry
		err := rows.Scan(
			&entry.ID,
			&entry.ActorID,
			&entry.ProjectID,
			&entry.ApplicationID,
			&entry.Type,
			&entry.Summary,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return entries, nil
}
