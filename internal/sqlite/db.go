package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection. The server passes
// ":memory:" by default: the registries live for the process lifetime
// only.
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// An in-memory database is destroyed when its last connection
	// closes; keep exactly one.
	db.SetMaxOpenConns(1)

	return &DB{db}, nil
}

// RunMigrations creates the schema.
func (db *DB) RunMigrations() error {
	migration := `
-- Actors table
CREATE TABLE actors (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    role TEXT NOT NULL CHECK(role IN ('MAIN_CONTRACTOR', 'SUBCONTRACTOR')),
    email TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    bio TEXT NOT NULL DEFAULT '',
    company_reg TEXT NOT NULL DEFAULT '',
    trade TEXT NOT NULL DEFAULT '',
    experience_level TEXT NOT NULL DEFAULT '',
    certifications TEXT NOT NULL DEFAULT '[]',
    rating REAL NOT NULL DEFAULT 0,
    location TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX idx_actors_role ON actors(role);
CREATE INDEX idx_actors_trade ON actors(trade);

-- Projects table. posted_by is deliberately not a foreign key: the
-- posting workflow records the creator but the registry does not
-- enforce the reference.
CREATE TABLE projects (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    budget REAL NOT NULL,
    budget_formatted TEXT NOT NULL,
    location TEXT NOT NULL,
    deadline TEXT NOT NULL,
    category TEXT NOT NULL,
    posted_by TEXT NOT NULL,
    status TEXT NOT NULL CHECK(status IN ('OPEN', 'IN_PROGRESS', 'COMPLETED')),
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX idx_projects_category ON projects(category);
CREATE INDEX idx_projects_location ON projects(location);
CREATE INDEX idx_projects_posted_by ON projects(posted_by);

-- Applications table
CREATE TABLE applications (
    id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL,
    subcontractor_id TEXT NOT NULL,
    subcontractor_name TEXT NOT NULL,
    subcontractor_trade TEXT NOT NULL DEFAULT '',
    subcontractor_exp TEXT NOT NULL DEFAULT '',
    bid_amount REAL NOT NULL,
    proposal TEXT NOT NULL,
    status TEXT NOT NULL CHECK(status IN ('PENDING', 'ACCEPTED', 'REJECTED')),
    decided_by TEXT,
    decided_at TIMESTAMP,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (project_id) REFERENCES projects(id)
);
CREATE INDEX idx_applications_project ON applications(project_id);
CREATE INDEX idx_applications_subcontractor ON applications(subcontractor_id);
CREATE INDEX idx_applications_status ON applications(status);

-- Sessions table
CREATE TABLE sessions (
    id TEXT PRIMARY KEY,
    actor_id TEXT NOT NULL,
    status TEXT NOT NULL CHECK(status IN ('active', 'closed')),
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    closed_at TIMESTAMP,
    FOREIGN KEY (actor_id) REFERENCES actors(id)
);
CREATE INDEX idx_sessions_actor ON sessions(actor_id);
CREATE INDEX idx_sessions_status ON sessions(status);

-- Activity log
CREATE TABLE activity_log (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    actor_id TEXT,
    project_id TEXT,
    application_id TEXT,
    activity_type TEXT NOT NULL,
    summary TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX idx_activity_project ON activity_log(project_id);
CREATE INDEX idx_activity_created_at ON activity_log(created_at);
`

	if _, err := db.Exec(migration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
