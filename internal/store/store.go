// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store maintains a queryable SQLite index of the breed dataset.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"breedset/pkg/types"
)

// Store manages the breed index SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the index database at cfg.DBPath, creating the
// schema and parent directory if they do not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating index directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS breeds (
			name TEXT PRIMARY KEY,
			origin TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_breeds_origin ON breeds(origin)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Import replaces the index contents with records, in one transaction.
// The dataset document is the source of truth; the index is fully
// rebuilt from it on every import.
func (s *Store) Import(ctx context.Context, records []types.BreedRecord) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM breeds`); err != nil {
		return 0, fmt.Errorf("clearing index: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO breeds (name, origin, image_url) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.Name, r.Origin, r.ImageURL); err != nil {
			return 0, fmt.Errorf("inserting %q: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}
	return len(records), nil
}

// Query returns records whose name or origin contains term,
// case-insensitively, ordered by name. A limit of 0 uses the configured
// default; a negative limit disables the limit (SQLite convention).
func (s *Store) Query(ctx context.Context, term string, limit int) ([]types.BreedRecord, error) {
	if limit == 0 {
		limit = s.maxResults
	}
	pattern := "%" + term + "%"

	rows, err := s.db.QueryContext(ctx,
		`SELECT name, origin, image_url FROM breeds
		 WHERE name LIKE ? OR origin LIKE ?
		 ORDER BY name COLLATE NOCASE
		 LIMIT ?`,
		pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var records []types.BreedRecord
	for rows.Next() {
		var r types.BreedRecord
		if err := rows.Scan(&r.Name, &r.Origin, &r.ImageURL); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ExportYAML writes the full index to w as a YAML document, ordered by name.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	records, err := s.Query(ctx, "", -1)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling export: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
