// Package jsonstore provides a JSON file-based implementation of
// domain.SnapshotRepository.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/mtoledo/credtrack/internal/domain"
)

// Store persists the project document as a single JSON snapshot file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted snapshot.
//
// A missing file yields (nil, nil). A file that cannot be parsed
// yields an error wrapping domain.ErrMalformedSnapshot so callers can
// fall back to the seed project rather than fail.
func (s *Store) Load() (*domain.Project, error) {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(lock)

	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	var p domain.Project
	if err := json.Unmarshal(content, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedSnapshot, err)
	}

	return &p, nil
}

// Save replaces the snapshot with the given project.
func (s *Store) Save(p domain.Project) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	content, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	// Write to temp file first, then rename for atomicity.
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// Ensure Store implements SnapshotRepository.
var _ domain.SnapshotRepository = (*Store)(nil)
