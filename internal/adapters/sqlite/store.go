package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"nestlist/internal/domain"
	"nestlist/internal/ports"
)

const schemaVersion = "1"

// Store implements ports.ListRepository using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
	log    logrus.FieldLogger
}

// Ensure Store implements ListRepository
var _ ports.ListRepository = (*Store)(nil)

// NewStore creates a new SQLite store. Call Open before use.
func NewStore(log logrus.FieldLogger) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{log: log}
}

// Open opens (and creates if needed) the database at dbPath
func (s *Store) Open(dbPath string) error {
	// Expand ~ in path
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	if dbPath == "" {
		dbPath = DefaultPath()
	}
	s.dbPath = dbPath

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// Writes are serialised through one connection.
	db.SetMaxOpenConns(1)
	s.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS lists (
			name TEXT PRIMARY KEY
		);
		CREATE TABLE IF NOT EXISTS items (
			key TEXT NOT NULL,
			list TEXT NOT NULL REFERENCES lists(name) ON DELETE CASCADE,
			parent_key TEXT,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (list, key)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_items_parent ON items(list, parent_key, position);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	s.log.WithField("path", dbPath).Debug("opened store")
	return nil
}

// Path returns the database file in use
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SchemaVersion reports the schema version recorded in the database
func (s *Store) SchemaVersion(ctx context.Context) (string, error) {
	var version string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)
	if err != nil {
		return "", fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// DefaultPath returns the database location under the XDG data directory
func DefaultPath() string {
	return filepath.Join(DataDir(), "nestlist.db")
}

// DataDir returns $XDG_DATA_HOME/nestlist, falling back to ~/.local/share
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "nestlist")
}

// ListNames returns every stored list name in alphabetical order
func (s *Store) ListNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM lists ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Load reads a list. A list that was never saved loads empty.
func (s *Store) Load(ctx context.Context, name string) (*domain.Outline, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, parent_key, title, note
		FROM items
		WHERE list = ?
		ORDER BY parent_key IS NOT NULL, position
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query list %s: %w", name, err)
	}
	defer rows.Close()

	outline := &domain.Outline{Name: name}
	parents := make(map[domain.Key]int)
	for rows.Next() {
		var key, title, note string
		var parent sql.NullString
		if err := rows.Scan(&key, &parent, &title, &note); err != nil {
			return nil, err
		}

		if !parent.Valid {
			parents[domain.Key(key)] = len(outline.Items)
			outline.Items = append(outline.Items, domain.Item{Key: domain.Key(key), Title: title, Note: note})
			continue
		}

		// Top-level rows sort first, so the parent is already known.
		pi, ok := parents[domain.Key(parent.String)]
		if !ok {
			return nil, fmt.Errorf("corrupt list %s: %s references missing parent %s", name, key, parent.String)
		}
		outline.Items[pi].Children = append(outline.Items[pi].Children,
			domain.Child{Key: domain.Key(key), Title: title, Note: note})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return outline, nil
}

// Save replaces the stored rows of outline in one transaction
func (s *Store) Save(ctx context.Context, outline *domain.Outline) error {
	if outline == nil || strings.TrimSpace(outline.Name) == "" {
		return fmt.Errorf("%w: list name is required", domain.ErrInvalidArgument)
	}
	if err := outline.Validate(); err != nil {
		return err
	}

	tx, err := s.beginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to save list %s: %w", outline.Name, err)
	}
	defer tx.Rollback()

	if err := tx.replaceList(outline.Name); err != nil {
		return fmt.Errorf("failed to save list %s: %w", outline.Name, err)
	}
	for i, it := range outline.Items {
		if err := tx.insertItem(outline.Name, "", i, it.Key, it.Title, it.Note); err != nil {
			return fmt.Errorf("failed to save item %s: %w", it.Key, err)
		}
		for j, ch := range it.Children {
			if err := tx.insertItem(outline.Name, it.Key, j, ch.Key, ch.Title, ch.Note); err != nil {
				return fmt.Errorf("failed to save item %s: %w", ch.Key, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to save list %s: %w", outline.Name, err)
	}

	s.log.WithFields(logrus.Fields{
		"list":  outline.Name,
		"items": outline.Len(),
	}).Debug("saved list")
	return nil
}

// DeleteList removes a list and its items
func (s *Store) DeleteList(ctx context.Context, name string) error {
	tx, err := s.beginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	n, err := tx.deleteList(name)
	if err != nil {
		return fmt.Errorf("failed to delete list %s: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: list %s", domain.ErrNotFound, name)
	}
	return tx.Commit()
}

// Search returns items whose title or note contains query, case-insensitively
func (s *Store) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT list, key, parent_key, title
		FROM items
		WHERE lower(title) LIKE ? ESCAPE '\' OR lower(note) LIKE ? ESCAPE '\'
		ORDER BY list, parent_key IS NOT NULL, parent_key, position
	`, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}
	defer rows.Close()

	var results []domain.SearchResult
	for rows.Next() {
		var r domain.SearchResult
		var key string
		var parent sql.NullString
		if err := rows.Scan(&r.List, &key, &parent, &r.Title); err != nil {
			return nil, err
		}
		r.Key = domain.Key(key)
		if parent.Valid {
			r.Parent = domain.Key(parent.String)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
