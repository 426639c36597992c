package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/raedalharbi/muqawil/internal/domain/actor"
	"github.com/raedalharbi/muqawil/internal/repository"
)

// ActorRepository implements actor.Repository for SQLite
type ActorRepository struct {
	db *DB
}

// NewActorRepository creates a new ActorRepository
func NewActorRepository(db *DB) *ActorRepository {
	return &ActorRepository{db: db}
}

const actorColumns = `
	id, name, role, email, phone, bio, company_reg, trade,
	experience_level, certifications, rating, location, address, created_at
`

// Create creates a new actor
func (r *ActorRepository) Create(ctx context.Context, act *actor.Actor) error {
	certs, err := json.Marshal(act.Certifications)
	if err != nil {
		return fmt.Errorf("failed to encode certifications: %w", err)
	}

	query := `
		INSERT INTO actors (
			id, name, role, email, phone, bio, company_reg, trade,
			experience_level, certifications, rating, location, address, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		act.ID,
		act.Name,
		act.Role,
		act.Email,
		act.Phone,
		act.Bio,
		act.CompanyReg,
		act.Trade,
		act.Experience,
		string(certs),
		act.Rating,
		act.Location,
		act.Address,
		act.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create actor: %w", err)
	}

	return nil
}

// Get retrieves an actor by ID
func (r *ActorRepository) Get(ctx context.Context, id string) (*actor.Actor, error) {
	query := `SELECT ` + actorColumns + ` FROM actors WHERE id = ?`

	act, err := scanActor(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}

	return act, nil
}

// Update replaces an actor's mutable fields
func (r *ActorRepository) Update(ctx context.Context, act *actor.Actor) error {
	certs, err := json.Marshal(act.Certifications)
	if err != nil {
		return fmt.Errorf("failed to encode certifications: %w", err)
	}

	query := `
		UPDATE actors
		SET name = ?, email = ?, phone = ?, bio = ?, company_reg = ?,
		    trade = ?, experience_level = ?, certifications = ?,
		    rating = ?, location = ?, address = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		act.Name,
		act.Email,
		act.Phone,
		act.Bio,
		act.CompanyReg,
		act.Trade,
		act.Experience,
		string(certs),
		act.Rating,
		act.Location,
		act.Address,
		act.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update actor: %w", err)
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

// SearchDirectory lists subcontractors matching the filter. The query
// is matched case-insensitively as a substring of the name or the
// location; the trade filter is exact when non-empty. Results come
// back in registration order.
func (r *ActorRepository) SearchDirectory(ctx context.Context, filter actor.DirectoryFilter) ([]actor.Actor, error) {
	query := `SELECT ` + actorColumns + ` FROM actors WHERE role = ?`
	args := []interface{}{actor.RoleSubcontractor}

	if filter.Query != "" {
		query += ` AND (instr(lower(name), lower(?)) > 0 OR instr(location, ?) > 0)`
		args = append(args, filter.Query, filter.Query)
	}
	if filter.Trade != "" {
		query += ` AND trade = ?`
		args = append(args, filter.Trade)
	}

	query += ` ORDER BY rowid ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search directory: %w", err)
	}
	defer rows.Close()

	var actors []actor.Actor
	for rows.Next() {
		act, err := scanActor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan actor: %w", err)
		}
		actors = append(actors, *act)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating actor rows: %w", err)
	}

	return actors, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanActor(row rowScanner) (*actor.Actor, error) {
	var act actor.Actor
	var certs string
	err := row.Scan(
		&act.ID,
		&act.Name,
		&act.Role,
		&act.Email,
		&act.Phone,
		&act.Bio,
		&act.CompanyReg,
		&act.Trade,
		&act.Experience,
		&certs,
		&act.Rating,
		&act.Location,
		&act.Address,
		&act.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(certs), &act.Certifications); err != nil {
		return nil, fmt.Errorf("failed to decode certifications: %w", err)
	}

	return &act, nil
}
