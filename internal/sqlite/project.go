package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/raedalharbi/muqawil/internal/domain/project"
	"github.com/raedalharbi/muqawil/internal/repository"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `
	id, title, description, budget, budget_formatted, location,
	deadline, category, posted_by, status, created_at
`

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	query := `
		INSERT INTO projects (
			id, title, description, budget, budget_formatted, location,
			deadline, category, posted_by, status, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		proj.ID,
		proj.Title,
		proj.Description,
		proj.Budget,
		proj.BudgetFormatted,
		proj.Location,
		proj.Deadline,
		proj.Category,
		proj.PostedBy,
		proj.Status,
		proj.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`

	proj, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return proj, nil
}

// List returns all projects, newest-first. Insertion order stands in
// for the original prepend-on-create semantics.
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	return r.Search(ctx, project.SearchFilter{})
}

// Search returns the projects matching every filter predicate, in the
// same newest-first order as List.
func (r *ProjectRepository) Search(ctx context.Context, filter project.SearchFilter) ([]project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE 1=1`
	args := []interface{}{}

	if filter.Query != "" {
		query += ` AND (instr(lower(title), lower(?)) > 0 OR instr(lower(description), lower(?)) > 0)`
		args = append(args, filter.Query, filter.Query)
	}
	if filter.Category != "" {
		query += ` AND category = ?`
		args = append(args, filter.Category)
	}
	if filter.Location != "" {
		query += ` AND location = ?`
		args = append(args, filter.Location)
	}
	if filter.MaxBudget > 0 {
		query += ` AND budget <= ?`
		args = append(args, filter.MaxBudget)
	}

	query += ` ORDER BY rowid DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *proj)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

func scanProject(row rowScanner) (*project.Project, error) {
	var proj project.Project
	err := row.Scan(
		&proj.ID,
		&proj.Title,
		&proj.Description,
		&proj.Budget,
		&proj.BudgetFormatted,
		&proj.Location,
		&proj.Deadline,
		&proj.Category,
		&proj.PostedBy,
		&proj.Status,
		&proj.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &proj, nil
}
