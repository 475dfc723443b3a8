package storage

import (
	"fmt"
	"io"
	"path"
	"time"

	"meeting-records-api/internal/util"
)

// MockStore implements Store in memory for testing
type MockStore struct {
	Files map[string][]byte
	// ModTimes holds per-file modtimes for Walk; files without an
	// entry report the zero time.
	ModTimes map[string]time.Time

	// Optional function overrides for custom test behavior
	SaveFunc   func(templateTitle, meetingTitle, originalName string, r io.Reader) (string, error)
	RemoveFunc func(relPath string) error
}

// NewMockStore creates an empty in-memory store
func NewMockStore() *MockStore {
	return &MockStore{Files: map[string][]byte{}, ModTimes: map[string]time.Time{}}
}

// Save stores the file content in memory under a deterministic path
func (m *MockStore) Save(templateTitle, meetingTitle, originalName string, r io.Reader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(templateTitle, meetingTitle, originalName, r)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	relPath := path.Join(
		util.SanitizeName(templateTitle),
		util.SanitizeName(meetingTitle),
		fmt.Sprintf("%d-%s", len(m.Files), util.SanitizeName(originalName)),
	)
	m.Files[relPath] = data
	return relPath, nil
}

// Remove deletes the in-memory file; missing files are not an error
func (m *MockStore) Remove(relPath string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(relPath)
	}
	delete(m.Files, relPath)
	delete(m.ModTimes, relPath)
	return nil
}

// Exists reports whether the in-memory file is present
func (m *MockStore) Exists(relPath string) bool {
	_, ok := m.Files[relPath]
	return ok
}

// Walk visits every in-memory file path with its recorded modtime
func (m *MockStore) Walk(fn func(relPath string, modTime time.Time) error) error {
	for p := range m.Files {
		if err := fn(p, m.ModTimes[p]); err != nil {
			return err
		}
	}
	return nil
}

// Root returns a placeholder root for the in-memory store
func (m *MockStore) Root() string {
	return "/tmp/attachments-test"
}
