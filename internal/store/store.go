// Package store is the durable record store: one SQLite table holding every
// book for every owner the process has ever seen. All queries and deletes are
// partitioned by owner so one session never sees another session's records.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/umaima-fareed13/libman/internal/catalog"
	"github.com/umaima-fareed13/libman/internal/util"
)

const schema = `
CREATE TABLE IF NOT EXISTS books (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    owner_id TEXT,
    title TEXT,
    author TEXT,
    year TEXT,
    genre TEXT,
    read INTEGER,
    image TEXT
)`

// Store wraps a shared SQLite handle. Every operation is a single statement,
// atomic under SQLite's own guarantees, so independent sessions in the same
// process can read and write concurrently.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database file at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := util.EnsureDir(dir); err != nil {
			return nil, fmt.Errorf("creating database dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &Store{db: db}, nil
}

// Init idempotently ensures the books table exists. Safe to call on every
// start; never drops or alters existing rows.
func (s *Store) Init() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// ListByOwner returns every record owned by ownerID in insertion order.
// No matches is an empty slice, not an error.
func (s *Store) ListByOwner(ownerID string) ([]catalog.Book, error) {
	rows, err := s.db.Query(
		`SELECT id, owner_id, title, author, year, genre, read, image
		 FROM books WHERE owner_id = ? ORDER BY id ASC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}
	defer rows.Close()

	books := []catalog.Book{}
	for rows.Next() {
		var (
			b     catalog.Book
			read  int
			image sql.NullString
		)
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.Title, &b.Author, &b.Year, &b.Genre, &read, &image); err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		b.Read = read != 0
		if image.Valid {
			b.Image = image.String
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}
	return books, nil
}

// Create validates fields, inserts a record under ownerID and returns the
// stored record with its assigned key. Validation lives here so every caller
// gets the same contract.
func (s *Store) Create(ownerID string, fields catalog.Fields) (catalog.Book, error) {
	if err := fields.Validate(); err != nil {
		return catalog.Book{}, err
	}

	read := 0
	if fields.Read {
		read = 1
	}
	res, err := s.db.Exec(
		`INSERT INTO books (owner_id, title, author, year, genre, read, image)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ownerID, fields.Title, fields.Author, fields.Year, fields.Genre, read, fields.Image)
	if err != nil {
		return catalog.Book{}, fmt.Errorf("inserting book: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return catalog.Book{}, fmt.Errorf("reading assigned id: %w", err)
	}

	book := fields.Book()
	book.ID = id
	book.OwnerID = ownerID
	slog.Debug("book created", "owner", ownerID, "id", id, "title", book.Title)
	return book, nil
}

// DeleteByOwnerAndTitle removes every record matching both owner and title
// and returns how many were removed. Titles are not unique, so a single call
// can remove more than one record; zero matches is not an error.
func (s *Store) DeleteByOwnerAndTitle(ownerID, title string) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM books WHERE owner_id = ? AND title = ?`, ownerID, title)
	if err != nil {
		return 0, fmt.Errorf("deleting books: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted rows: %w", err)
	}
	slog.Debug("books deleted", "owner", ownerID, "title", title, "count", n)
	return n, nil
}
