// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"sync"

	"github.com/mtoledo/credtrack/internal/domain"
)

// MockSnapshotRepository is a test double for domain.SnapshotRepository.
type MockSnapshotRepository struct {
	mu        sync.Mutex
	Snapshot  *domain.Project
	Saved     []domain.Project
	LoadErr   error
	SaveErr   error
	saveCalls int
}

// Load returns the configured snapshot or error.
func (m *MockSnapshotRepository) Load() (*domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Snapshot == nil {
		return nil, nil
	}
	p := m.Snapshot.Clone()
	return &p, nil
}

// Save records the snapshot in save order.
func (m *MockSnapshotRepository) Save(p domain.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = append(m.Saved, p.Clone())
	return nil
}

// SaveCalls returns how many times Save was invoked.
func (m *MockSnapshotRepository) SaveCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveCalls
}

// LastSaved returns the most recently saved project, or nil.
func (m *MockSnapshotRepository) LastSaved() *domain.Project {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Saved) == 0 {
		return nil
	}
	p := m.Saved[len(m.Saved)-1].Clone()
	return &p
}

// SeqIDGenerator is a deterministic test double for domain.IDGenerator.
type SeqIDGenerator struct {
	Prefix string
	n      int
}

// NewID returns prefix-1, prefix-2, ...
func (g *SeqIDGenerator) NewID() string {
	g.n++
	prefix := g.Prefix
	if prefix == "" {
		prefix = "id"
	}
	return fmt.Sprintf("%s-%d", prefix, g.n)
}

// NopLogger discards all log output.
type NopLogger struct{}

// Debug discards the message.
func (NopLogger) Debug(string) {}

// Info discards the message.
func (NopLogger) Info(string) {}

// Warn discards the message.
func (NopLogger) Warn(string) {}

// Error discards the message.
func (NopLogger) Error(string) {}

// RecordingLogger captures warnings and errors for assertions.
type RecordingLogger struct {
	mu     sync.Mutex
	Warns  []string
	Errors []string
}

// Debug discards the message.
func (l *RecordingLogger) Debug(string) {}

// Info discards the message.
func (l *RecordingLogger) Info(string) {}

// Warn records the message.
func (l *RecordingLogger) Warn(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Warns = append(l.Warns, msg)
}

// Error records the message.
func (l *RecordingLogger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Errors = append(l.Errors, msg)
}

// WarnCount returns the number of recorded warnings.
func (l *RecordingLogger) WarnCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.Warns)
}
