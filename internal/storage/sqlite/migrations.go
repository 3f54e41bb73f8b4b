package sqlite

import "database/sql"

// schema sets up the database. It runs on startup to ensure tables exist.
//
// Event resident lists are kept in their textual display and storage forms so
// existing saved data stays readable.
const schema = `
CREATE TABLE IF NOT EXISTS persons (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL COLLATE NOCASE UNIQUE,
    room TEXT NOT NULL COLLATE NOCASE UNIQUE,
    phone TEXT NOT NULL,
    email TEXT NOT NULL,
    vaccinated INTEGER NOT NULL,
    faculty TEXT NOT NULL,
    last_fet_date TEXT NOT NULL DEFAULT 'None',
    last_collection_date TEXT NOT NULL DEFAULT 'None',
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS events (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    date TEXT NOT NULL,
    time TEXT NOT NULL,
    venue TEXT NOT NULL,
    capacity INTEGER NOT NULL CHECK (capacity > 0),
    residents_display TEXT NOT NULL DEFAULT 'None',
    residents_storage TEXT NOT NULL DEFAULT 'None',
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_events_created_at ON events(created_at);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
