package ogmaker

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store wraps a SQLite database holding the manifest of generated images.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the preview server read while a batch run writes; the busy
	// timeout makes writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS images (
    slug TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    path TEXT NOT NULL,
    size INTEGER NOT NULL DEFAULT 0,
    generated_at TEXT NOT NULL
);
`)
	return err
}

// SaveImage upserts a manifest record. A record with the same slug is
// replaced, mirroring the overwritten file on disk.
func (s *Store) SaveImage(img ImageRecord) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO images (slug, title, path, size, generated_at) VALUES (?, ?, ?, ?, ?)`,
		img.Slug, img.Title, img.Path, img.Size, img.GeneratedAt)
	return err
}

// GetImage returns the record for slug, or ErrNotFound.
func (s *Store) GetImage(slug string) (ImageRecord, error) {
	img := ImageRecord{Slug: slug}
	err := s.db.QueryRow(`SELECT title, path, size, generated_at FROM images WHERE slug = ?`, slug).
		Scan(&img.Title, &img.Path, &img.Size, &img.GeneratedAt)
	if err != nil {
		return ImageRecord{}, err
	}
	return img, nil
}

// ListImages returns every record, newest first.
func (s *Store) ListImages() ([]ImageRecord, error) {
	rows, err := s.db.Query(`SELECT slug, title, path, size, generated_at FROM images ORDER BY generated_at DESC, slug ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []ImageRecord
	for rows.Next() {
		var img ImageRecord
		if err := rows.Scan(&img.Slug, &img.Title, &img.Path, &img.Size, &img.GeneratedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}
