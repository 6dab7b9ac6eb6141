package vgaframe

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// FrameDB caches converted frames so unchanged images are not decoded and
// scaled again.
type FrameDB struct {
	db *sql.DB
}

// FrameKey identifies a converted frame. The same source image converted
// with different settings is cached separately.
type FrameKey struct {
	SHA1    string
	Width   int
	Height  int
	Resizer string
	Colors  int
}

// NewFrameDB opens, creating if necessary, the SQLite database in file.
func NewFrameDB(file string) (*FrameDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS frame (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, resizer TEXT NOT NULL, colors INTEGER NOT NULL, data BLOB NOT NULL, UNIQUE (sha1, width, height, resizer, colors))"); err != nil {
		db.Close()
		return nil, err
	}

	return &FrameDB{
		db: db,
	}, nil
}

// Close closes the database.
func (db *FrameDB) Close() error {
	return db.db.Close()
}

// FindFrame returns the cached frame for key, or nil if there isn't one.
func (db *FrameDB) FindFrame(key FrameKey) ([]byte, error) {
	var data []byte
	switch err := db.db.QueryRow("SELECT data FROM frame WHERE sha1 = ? AND width = ? AND height = ? AND resizer = ? AND colors = ?", key.SHA1, key.Width, key.Height, key.Resizer, key.Colors).Scan(&data); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return data, nil
	default:
		return nil, err
	}
}

// AddFrame stores data as the frame for key, replacing any existing one.
func (db *FrameDB) AddFrame(key FrameKey, data []byte) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO frame (sha1, width, height, resizer, colors, data) VALUES (?, ?, ?, ?, ?, ?)", key.SHA1, key.Width, key.Height, key.Resizer, key.Colors, data); err != nil {
		return err
	}
	return nil
}

// Count returns the number of cached frames.
func (db *FrameDB) Count() (int, error) {
	var n int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM frame").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Purge removes every cached frame.
func (db *FrameDB) Purge() (int64, error) {
	result, err := db.db.Exec("DELETE FROM frame")
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
