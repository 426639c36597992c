package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/raedalharbi/muqawil/internal/domain/application"
	"github.com/raedalharbi/muqawil/internal/repository"
)

// ApplicationRepository implements application.Repository for SQLite
type ApplicationRepository struct {
	db *DB
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `
	id, project_id, subcontractor_id, subcontractor_name,
	subcontractor_trade, subcontractor_exp, bid_amount, proposal,
	status, decided_by, decided_at, created_at
`

// Create appends a new application
func (r *ApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	query := `
		INSERT INTO applications (
			id, project_id, subcontractor_id, subcontractor_name,
			subcontractor_trade, subcontractor_exp, bid_amount, proposal,
			status, decided_by, decided_at, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		app.ID,
		app.ProjectID,
		app.SubcontractorID,
		app.SubcontractorName,
		app.SubcontractorTrade,
		app.SubcontractorExp,
		app.BidAmount,
		app.Proposal,
		app.Status,
		app.DecidedBy,
		app.DecidedAt,
		app.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

// Get retrieves an application by ID
func (r *ApplicationRepository) Get(ctx context.Context, id string) (*application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = ?`

	app, err := scanApplication(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return app, nil
}

// UpdateDecision persists a status transition in place. The WHERE
// clause re-checks the pending status so a lost race can never
// overwrite a decision.
func (r *ApplicationRepository) UpdateDecision(ctx context.Context, app *application.Application) error {
	query := `
		UPDATE applications
		SET status = ?, decided_by = ?, decided_at = ?
		WHERE id = ? AND status = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		app.Status,
		app.DecidedBy,
		app.DecidedAt,
		app.ID,
		application.StatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
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

// ListForProject returns a project's applications in submission order
// (oldest bid first), optionally filtered by bidder trade and
// experience level.
func (r *ApplicationRepository) ListForProject(ctx context.Context, projectID string, filter application.ListFilter) ([]application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE project_id = ?`
	args := []interface{}{projectID}

	if filter.Trade != "" {
		query += ` AND subcontractor_trade = ?`
		args = append(args, filter.Trade)
	}
	if filter.Experience != "" {
		query += ` AND subcontractor_exp = ?`
		args = append(args, filter.Experience)
	}

	query += ` ORDER BY rowid ASC`

	return r.list(ctx, query, args...)
}

// ListForActor returns every application submitted by the given actor,
// in submission order.
func (r *ApplicationRepository) ListForActor(ctx context.Context, actorID string) ([]application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE subcontractor_id = ? ORDER BY rowid ASC`
	return r.list(ctx, query, actorID)
}

func (r *ApplicationRepository) list(ctx context.Context, query string, args ...interface{}) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []application.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return apps, nil
}

func scanApplication(row rowScanner) (*application.Application, error) {
	var app application.Application
	err := row.Scan(
		&app.ID,
		&app.ProjectID,
		&app.SubcontractorID,
		&app.SubcontractorName,
		&app.SubcontractorTrade,
		&app.SubcontractorExp,
		&app.BidAmount,
		&app.Proposal,
		&app.Status,
		&app.DecidedBy,
		&app.DecidedAt,
		&app.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}
