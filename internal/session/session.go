// Package session holds per-session state: the opaque owner identity that
// partitions the record store, and the in-memory working set mirroring that
// owner's records. A Context is created at startup and passed explicitly to
// every operation; it is never global and carries no durability obligation.
package session

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/umaima-fareed13/libman/internal/catalog"
)

// identityLen truncates the UUID to a compact token. 8 hex chars give 32 bits
// of randomness, enough to keep accidental collision between concurrently
// active sessions negligible.
const identityLen = 8

// Lister is the slice of the record store the session needs for its initial
// load.
type Lister interface {
	ListByOwner(ownerID string) ([]catalog.Book, error)
}

// Context is one session's identity plus its working set cache. The durable
// store stays authoritative; the cache exists only so repeated renders never
// re-query after the first load.
type Context struct {
	identity string
	loaded   bool
	books    []catalog.Book
}

// NewContext creates a session context. An empty identity mints a fresh
// random token; a non-empty one pins the session to an existing owner
// (scripting override).
func NewContext(identity string) *Context {
	if identity == "" {
		identity = uuid.NewString()[:identityLen]
		slog.Debug("session identity minted", "identity", identity)
	}
	return &Context{identity: identity}
}

// Identity returns the session's owner token, stable for the lifetime of the
// context.
func (c *Context) Identity() string {
	return c.identity
}

// Load populates the working set from the store. Only the first call reads;
// subsequent calls are no-ops so a session is loaded at most once.
func (c *Context) Load(store Lister) error {
	if c.loaded {
		return nil
	}
	books, err := store.ListByOwner(c.identity)
	if err != nil {
		return err
	}
	c.books = books
	c.loaded = true
	slog.Debug("working set loaded", "identity", c.identity, "books", len(books))
	return nil
}

// Add appends a record to the working set. Call it only after the durable
// create succeeded, so cache and store never diverge.
func (c *Context) Add(book catalog.Book) {
	c.books = append(c.books, book)
}

// Remove filters out every cached record with the given title, mirroring the
// store's multi-match delete. Returns how many were removed. Call it only
// after the durable delete succeeded.
func (c *Context) Remove(title string) int {
	kept := c.books[:0]
	removed := 0
	for _, b := range c.books {
		if b.Title == title {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	c.books = kept
	return removed
}

// Books returns the working set in insertion order. The returned slice is the
// cache itself; callers must not mutate it.
func (c *Context) Books() []catalog.Book {
	return c.books
}
