// Package covers sideloads uploaded cover images to a content folder. Files
// are keyed by their original name, independent of the record store: a record
// only holds the relative path, and no referential integrity is maintained
// between the two.
package covers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Manager handles the cover image folder.
type Manager struct {
	baseDir string
}

// New creates a cover Manager rooted at baseDir.
func New(baseDir string) *Manager {
	return &Manager{baseDir: baseDir}
}

// Path returns the path for a cover with the given original filename.
func (m *Manager) Path(filename string) string {
	return filepath.Join(m.baseDir, filepath.Base(filename))
}

// Store writes r under the original filename and returns the relative path to
// embed in a record. The folder is created on demand; a name collision is
// last-write-wins. Writes go through a temp file so a partial write never
// lands under the final name.
func (m *Manager) Store(r io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(m.baseDir, 0750); err != nil {
		return "", fmt.Errorf("create covers dir: %w", err)
	}

	destPath := m.Path(filename)
	tmpPath := destPath + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("writing cover: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	return destPath, nil
}

// StoreFile copies an existing file into the cover folder.
func (m *Manager) StoreFile(src string) (string, error) {
	f, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("opening cover source: %w", err)
	}
	defer f.Close()
	return m.Store(f, filepath.Base(src))
}

// Resolve reports whether the cover at rel still exists on disk. A file
// deleted out from under a record simply means "image absent", not an error.
func (m *Manager) Resolve(rel string) (string, bool) {
	if rel == "" {
		return "", false
	}
	if _, err := os.Stat(rel); err != nil {
		return "", false
	}
	return rel, true
}

// Remove deletes a cover if it exists.
func (m *Manager) Remove(filename string) error {
	err := os.Remove(m.Path(filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
