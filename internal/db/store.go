package db

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/user/linkman/internal/links"
)

// Store persists the last imported link list of each panel so the next run
// can show it without rescanning the folder. Rows are replaced wholesale on
// every import; the store never accumulates history.
type Store struct {
	db *sql.DB
}

func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS links (
		id TEXT PRIMARY KEY,
		panel TEXT NOT NULL,
		url TEXT NOT NULL,
		folder TEXT NOT NULL DEFAULT '',
		imported_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(panel, url)
	);

	CREATE INDEX IF NOT EXISTS idx_links_panel ON links(panel);

	CREATE TABLE IF NOT EXISTS metadata (
		key TEXT PRIMARY KEY,
		value TEXT
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

func generateID(panel, url string) string {
	hash := sha256.Sum256([]byte(panel + "\x00" + url))
	return hex.EncodeToString(hash[:8])
}

// Replace swaps a panel's stored links for the given set in one transaction,
// recording the folder they came from.
func (s *Store) Replace(panel, folder string, urls []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM links WHERE panel = ?`, panel); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO links (id, panel, url, folder, imported_at) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for _, u := range urls {
		if _, err := stmt.Exec(generateID(panel, u), panel, u, folder, now); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	return s.SetMetadata("last_import_at:"+panel, now.Format(time.RFC3339))
}

// List returns a panel's stored URLs in sorted order.
func (s *Store) List(panel string) (links.Collection, error) {
	rows, err := s.db.Query(`SELECT url FROM links WHERE panel = ? ORDER BY url`, panel)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out links.Collection
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Search returns a panel's URLs containing query as a case-insensitive
// substring, sorted. An empty query matches everything.
func (s *Store) Search(panel, query string) (links.Collection, error) {
	if query == "" {
		return s.List(panel)
	}
	rows, err := s.db.Query(
		`SELECT url FROM links WHERE panel = ? AND instr(lower(url), lower(?)) > 0 ORDER BY url`,
		panel, query,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out links.Collection
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Links returns a panel's full link records in sorted URL order.
func (s *Store) Links(panel string) ([]Link, error) {
	rows, err := s.db.Query(
		`SELECT id, panel, url, folder, imported_at FROM links WHERE panel = ? ORDER BY url`, panel)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Link
	for rows.Next() {
		var l Link
		if err := rows.Scan(&l.ID, &l.Panel, &l.URL, &l.Folder, &l.ImportedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Folder returns the folder a panel's links were last imported from, or ""
// if the panel has never been imported.
func (s *Store) Folder(panel string) (string, error) {
	var folder string
	err := s.db.QueryRow(`SELECT folder FROM links WHERE panel = ? LIMIT 1`, panel).Scan(&folder)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return folder, err
}

func (s *Store) Count(panel string) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM links WHERE panel = ?`, panel).Scan(&count)
	return count, err
}

func (s *Store) GetMetadata(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

func (s *Store) SetMetadata(key, value string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO metadata (key, value) VALUES (?, ?)`, key, value)
	return err
}
