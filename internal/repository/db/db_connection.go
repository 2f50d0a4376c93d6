package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens/creates a SQLite DB file and ensures the wardrobe tables exist.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// One connection serializes writers and keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

var pragmas = []string{
	"PRAGMA journal_mode = WAL;",
	"PRAGMA foreign_keys = ON;",
	"PRAGMA busy_timeout = 5000;",
}

const sqliteDriverName = "sqlite"

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL
);
`

// Wardrobes are keyed by user id only: a save for an id without a user row
// still creates the wardrobe.
const schemaWardrobes = `
CREATE TABLE IF NOT EXISTS wardrobes (
    user_id INTEGER PRIMARY KEY
);
`

// Category order is the insertion order of the user's category list.
const schemaWardrobeCategories = `
CREATE TABLE IF NOT EXISTS wardrobe_categories (
    user_id INTEGER NOT NULL REFERENCES wardrobes(user_id),
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    PRIMARY KEY (user_id, position)
);
`

const schemaWardrobeShelves = `
CREATE TABLE IF NOT EXISTS wardrobe_shelves (
    user_id INTEGER NOT NULL REFERENCES wardrobes(user_id),
    position INTEGER NOT NULL,
    category TEXT NOT NULL,
    PRIMARY KEY (user_id, position)
);
`

const schemaWardrobeItems = `
CREATE TABLE IF NOT EXISTS wardrobe_items (
    user_id INTEGER NOT NULL,
    shelf_position INTEGER NOT NULL,
    position INTEGER NOT NULL,
    item_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    image TEXT NOT NULL,
    color TEXT NOT NULL,
    season TEXT NOT NULL,
    PRIMARY KEY (user_id, shelf_position, position),
    FOREIGN KEY (user_id, shelf_position) REFERENCES wardrobe_shelves(user_id, position)
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaUsers,
		schemaWardrobes,
		schemaWardrobeCategories,
		schemaWardrobeShelves,
		schemaWardrobeItems,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
