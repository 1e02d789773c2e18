package adapter

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	m "github.com/mouse-blink/rootscan/internal/model"
)

// CatalogStore persists and retrieves the resources recorded by a scan.
type CatalogStore interface {
	SaveRecords(records []m.CatalogRecord) error
	LoadRecords(rootSet string) ([]m.CatalogRecord, error)
	Close() error
}

type catalogStore struct {
	db *sql.DB
}

const catalogSchema = `
CREATE TABLE IF NOT EXISTS resources (
	root_set   TEXT NOT NULL,
	source     TEXT NOT NULL,
	mount      TEXT NOT NULL,
	name       TEXT NOT NULL,
	is_dir     INTEGER NOT NULL,
	size       INTEGER NOT NULL,
	hash       TEXT NOT NULL,
	indexed_at INTEGER NOT NULL,
	PRIMARY KEY (root_set, source, mount, name)
);

CREATE INDEX IF NOT EXISTS idx_resources_hash ON resources(hash);
`

// NewCatalogStore opens (creating if needed) the SQLite catalog at path.
func NewCatalogStore(path m.Path) (CatalogStore, error) {
	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	if _, err := db.Exec(catalogSchema); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &catalogStore{db: db}, nil
}

func (cs *catalogStore) SaveRecords(records []m.CatalogRecord) error {
	tx, err := cs.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO resources (root_set, source, mount, name, is_dir, size, hash, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (root_set, source, mount, name)
		DO UPDATE SET is_dir = excluded.is_dir, size = excluded.size, hash = excluded.hash, indexed_at = excluded.indexed_at`)
	if err != nil {
		_ = tx.Rollback()

		return fmt.Errorf("failed to prepare insert: %w", err)
	}

	defer func() { _ = stmt.Close() }()

	now := time.Now().Unix()

	for _, r := range records {
		if _, err := stmt.Exec(r.RootSet, string(r.Source), r.Offset, r.Name, r.IsDir, r.Size, r.Hash, now); err != nil {
			_ = tx.Rollback()

			return fmt.Errorf("failed to save %s: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog: %w", err)
	}

	return nil
}

func (cs *catalogStore) LoadRecords(rootSet string) ([]m.CatalogRecord, error) {
	rows, err := cs.db.Query(`
		SELECT root_set, source, mount, name, is_dir, size, hash
		FROM resources
		WHERE root_set = ?
		ORDER BY source, mount, name`, rootSet)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}

	defer func() { _ = rows.Close() }()

	var records []m.CatalogRecord

	for rows.Next() {
		var (
			r      m.CatalogRecord
			source string
		)

		if err := rows.Scan(&r.RootSet, &source, &r.Offset, &r.Name, &r.IsDir, &r.Size, &r.Hash); err != nil {
			return nil, fmt.Errorf("failed to read catalog row: %w", err)
		}

		r.Source = m.Path(source)
		records = append(records, r)
	}

	return records, rows.Err()
}

func (cs *catalogStore) Close() error {
	return cs.db.Close()
}
