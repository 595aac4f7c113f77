// Package store persists extracted menu configurations between sessions
// so menus can be rebuilt without re-reading every project file.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mapmenu/mapmenu/api"
	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("menu config not found")

// Store is a SQLite-backed cache of menu configurations, keyed by the
// URI the project was opened from.
type Store struct {
	db *sql.DB
}

// Entry describes one cached configuration without its tree.
type Entry struct {
	URI           string
	Filename      string
	SourceModTime time.Time
	BuiltAt       time.Time
}

// Open opens (or creates) a cache database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache %s: %w", dbPath, err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS menu_configs (
		uri TEXT PRIMARY KEY,
		filename TEXT NOT NULL,
		source_mtime INTEGER NOT NULL,
		built_at INTEGER NOT NULL,
		config JSON NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Put stores cfg, replacing any previous entry for the same URI.
// sourceModTime is the project file's modification time at extraction,
// used by callers to decide whether an entry is stale.
func (s *Store) Put(cfg *api.ProjectConfig, sourceModTime time.Time) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config for %s: %w", cfg.URI, err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO menu_configs (uri, filename, source_mtime, built_at, config)
		 VALUES (?, ?, ?, ?, ?)`,
		cfg.URI, cfg.Filename, sourceModTime.Unix(), time.Now().Unix(), data,
	)
	if err != nil {
		return fmt.Errorf("store config for %s: %w", cfg.URI, err)
	}
	return nil
}

// Get returns the cached configuration for uri.
func (s *Store) Get(uri string) (*api.ProjectConfig, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT config FROM menu_configs WHERE uri = ?`, uri).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", uri, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load config for %s: %w", uri, err)
	}

	var cfg api.ProjectConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config for %s: %w", uri, err)
	}
	return &cfg, nil
}

// List returns the cache's entries ordered by URI.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT uri, filename, source_mtime, built_at FROM menu_configs ORDER BY uri`)
	if err != nil {
		return nil, fmt.Errorf("list configs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var mtime, built int64
		if err := rows.Scan(&e.URI, &e.Filename, &mtime, &built); err != nil {
			return nil, fmt.Errorf("scan config entry: %w", err)
		}
		e.SourceModTime = time.Unix(mtime, 0)
		e.BuiltAt = time.Unix(built, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes the entry for uri. Deleting an absent entry is not an
// error.
func (s *Store) Delete(uri string) error {
	if _, err := s.db.Exec(`DELETE FROM menu_configs WHERE uri = ?`, uri); err != nil {
		return fmt.Errorf("delete config for %s: %w", uri, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
