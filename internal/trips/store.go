package trips

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists the trip catalog in SQLite.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the database at path and makes
// sure the schema exists. Use ":memory:" for a throwaway store.
func OpenStore(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		dsn = path + "?_foreign_keys=1"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// An in-memory database lives per connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return s, nil
}

func (s *Store) createTables() error {
	const createTrips = `
	CREATE TABLE IF NOT EXISTS trips (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL DEFAULT 0,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`
	const createCategoryIndex = `CREATE INDEX IF NOT EXISTS idx_trips_category ON trips(category);`

	if _, err := s.db.Exec(createTrips); err != nil {
		return err
	}
	_, err := s.db.Exec(createCategoryIndex)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Upsert inserts or replaces a trip at the given list position.
func (s *Store) Upsert(ctx context.Context, trip Trip, position int) error {
	if trip.ID == "" {
		return errors.New("trip id is required")
	}
	if trip.Title == "" {
		return fmt.Errorf("trip %s: title is required", trip.ID)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO trips (id, title, description, image, category, position, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			image = excluded.image,
			category = excluded.category,
			position = excluded.position,
			updated_at = CURRENT_TIMESTAMP`,
		trip.ID, trip.Title, trip.Description, trip.Image, trip.Category, position)
	if err != nil {
		return fmt.Errorf("upsert trip %s: %w", trip.ID, err)
	}
	return nil
}

// Seed upserts the given trips in one transaction, keeping their order.
func (s *Store) Seed(ctx context.Context, list []Trip) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trips (id, title, description, image, category, position)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			image = excluded.image,
			category = excluded.category,
			position = excluded.position,
			updated_at = CURRENT_TIMESTAMP`)
	if err != nil {
		return fmt.Errorf("prepare seed: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, trip := range list {
		if trip.ID == "" || trip.Title == "" {
			return fmt.Errorf("seed entry %d: id and title are required", i)
		}
		if _, err = stmt.ExecContext(ctx, trip.ID, trip.Title, trip.Description, trip.Image, trip.Category, i); err != nil {
			return fmt.Errorf("seed trip %s: %w", trip.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

// List returns trips in catalog order. An empty category returns all.
func (s *Store) List(ctx context.Context, category string) ([]Trip, error) {
	query := `SELECT id, title, description, image, category FROM trips`
	var args []any
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY position, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer func() { _ = rows.Close() }()

	list := []Trip{}
	for rows.Next() {
		var t Trip
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Image, &t.Category); err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return list, nil
}

// Get returns a single trip, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Trip, error) {
	var t Trip
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, description, image, category FROM trips WHERE id = ?`, id,
	).Scan(&t.ID, &t.Title, &t.Description, &t.Image, &t.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return Trip{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Trip{}, fmt.Errorf("get trip %s: %w", id, err)
	}
	return t, nil
}

// Count returns the number of trips in the catalog.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM trips`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count trips: %w", err)
	}
	return n, nil
}
