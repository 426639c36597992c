package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/raedalharbi/muqawil/internal/domain/session"
	"github.com/raedalharbi/muqawil/internal/repository"
)

// SessionRepository implements session.Repository for SQLite
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(ctx context.Context, sess *session.Session) error {
	query := `
		INSERT INTO sessions (id, actor_id, status, created_at, closed_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		sess.ID,
		sess.ActorID,
		sess.Status,
		sess.CreatedAt,
		sess.ClosedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// Get retrieves a session by ID
func (r *SessionRepository) Get(ctx context.Context, id string) (*session.Session, error) {
	query := `
		SELECT id, actor_id, status, created_at, closed_at
		FROM sessions
		WHERE id = ?
	`

	var sess session.Session
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sess.ID,
		&sess.ActorID,
		&sess.Status,
		&sess.CreatedAt,
		&sess.ClosedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &sess, nil
}

// Close marks a session closed
func (r *SessionRepository) Close(ctx context.Context, id string) error {
	query := `
		UPDATE sessions
		SET status = ?, closed_at = ?
		WHERE id = ? AND status = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		session.StatusClosed,
		time.Now(),
		id,
		session.StatusActive,
	)
	if err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
