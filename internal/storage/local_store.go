// Package storage persists attachment files on the local disk under a
// directory tree derived from sanitized template and meeting titles.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"meeting-records-api/internal/util"
)

// Store defines the interface for attachment file storage
type Store interface {
	// Save writes the file under <template>/<meeting>/<unix-ms>-<name>
	// and returns the relative path it was stored at.
	Save(templateTitle, meetingTitle, originalName string, r io.Reader) (string, error)
	// Remove deletes a stored file; a missing file is not an error.
	Remove(relPath string) error
	// Exists reports whether a stored file is present on disk.
	Exists(relPath string) bool
	// Walk visits every stored file with its relative path and modtime.
	Walk(fn func(relPath string, modTime time.Time) error) error
	// Root returns the absolute attachments root directory.
	Root() string
}

// LocalStore is the disk implementation of Store
type LocalStore struct {
	root string
	now  func() time.Time
}

// NewLocalStore creates a Store rooted at dir, creating it if absent
func NewLocalStore(dir string) (*LocalStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve attachments dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create attachments dir: %w", err)
	}
	return &LocalStore{root: abs, now: time.Now}, nil
}

// Root returns the absolute attachments root directory
func (s *LocalStore) Root() string {
	return s.root
}

// Save writes the uploaded file. The directory is derived from the
// current titles exactly once; the returned relative path is what gets
// persisted, so later renames cannot orphan the file. MkdirAll treats
// an already existing directory as success, which makes concurrent
// first uploads to the same meeting safe.
func (s *LocalStore) Save(templateTitle, meetingTitle, originalName string, r io.Reader) (string, error) {
	dir := filepath.Join(util.SanitizeName(templateTitle), util.SanitizeName(meetingTitle))
	if err := os.MkdirAll(filepath.Join(s.root, dir), 0o755); err != nil {
		return "", fmt.Errorf("create attachment dir: %w", err)
	}

	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), util.SanitizeName(originalName))
	relPath := filepath.ToSlash(filepath.Join(dir, name))

	f, err := os.Create(filepath.Join(s.root, filepath.FromSlash(relPath)))
	if err != nil {
		return "", fmt.Errorf("create attachment file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write attachment file: %w", err)
	}
	return relPath, nil
}

// Remove deletes a stored file, treating an already missing file as done
func (s *LocalStore) Remove(relPath string) error {
	full, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove attachment file: %w", err)
	}
	return nil
}

// Exists reports whether the stored file is present
func (s *LocalStore) Exists(relPath string) bool {
	full, err := s.resolve(relPath)
	if err != nil {
		return false
	}
	_, statErr := os.Stat(full)
	return statErr == nil
}

// Walk visits every file under the root, yielding slash-separated
// relative paths
func (s *LocalStore) Walk(fn func(relPath string, modTime time.Time) error) error {
	return filepath.Walk(s.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		return fn(filepath.ToSlash(rel), info.ModTime())
	})
}

// resolve joins a stored relative path to the root, rejecting traversal
func (s *LocalStore) resolve(relPath string) (string, error) {
	full := filepath.Join(s.root, filepath.FromSlash(relPath))
	if !strings.HasPrefix(full, s.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid attachment path %q", relPath)
	}
	return full, nil
}
