// Package filestore stores archive attachments on local disk.
// Callers treat Remove as best-effort.
package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidPath is returned for empty or traversal-attempting paths.
var ErrInvalidPath = errors.New("invalid file path")

// Store is a directory-backed attachment store.
type Store struct {
	dir string
}

// New creates the storage directory if needed and returns a Store.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes the reader's content under a uuid-prefixed variant of
// the original file name and returns the stored path (relative to the
// store) and the original name.
func (s *Store) Save(originalName string, r io.Reader) (storedPath, fileName string, err error) {
	fileName = sanitizeName(originalName)
	if fileName == "" {
		return "", "", ErrInvalidPath
	}
	storedPath = uuid.NewString() + "_" + fileName

	f, err := os.Create(filepath.Join(s.dir, storedPath))
	if err != nil {
		return "", "", fmt.Errorf("create stored file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(filepath.Join(s.dir, storedPath))
		return "", "", fmt.Errorf("write stored file: %w", err)
	}
	return storedPath, fileName, nil
}

// Open returns a reader over a stored file.
func (s *Store) Open(storedPath string) (io.ReadCloser, error) {
	abs, err := s.resolve(storedPath)
	if err != nil {
		return nil, err
	}
	return os.Open(abs)
}

// Remove deletes a stored file. Removing a path that is already gone
// is not an error.
func (s *Store) Remove(storedPath string) error {
	abs, err := s.resolve(storedPath)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stored file: %w", err)
	}
	return nil
}

// resolve maps a stored path to an absolute path inside the store dir.
func (s *Store) resolve(storedPath string) (string, error) {
	if storedPath == "" {
		return "", ErrInvalidPath
	}
	cleaned := filepath.Clean(storedPath)
	if cleaned == "." || strings.Contains(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", ErrInvalidPath
	}
	return filepath.Join(s.dir, cleaned), nil
}

// sanitizeName strips directory components and whitespace from a
// client-supplied file name.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	name = filepath.Base(filepath.Clean(name))
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return name
}
