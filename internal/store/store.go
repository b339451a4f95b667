// Package store owns the canonical project state and its persistence.
package store

import (
	"fmt"
	"sync"

	"github.com/mtoledo/credtrack/internal/domain"
)

// writeQueueSize bounds the persistence queue. Mutations enqueue the
// snapshot and return; the writer goroutine drains in order.
const writeQueueSize = 16

// Store is the single owner of the canonical project value.
//
// Every mutation applies a pure transformation (old state to new
// state), swaps the current value, and hands a copy to the writer
// goroutine. Writes are issued in mutation order and never block the
// mutation's return beyond enqueueing. Write failures are logged and
// otherwise ignored; the in-memory state stays authoritative.
type Store struct {
	repo   domain.SnapshotRepository
	ids    domain.IDGenerator
	logger domain.Logger

	mu  sync.Mutex
	cur domain.Project

	writes chan domain.Project
	done   chan struct{}
	once   sync.Once
}

// New creates a Store hydrated from the repository.
//
// A missing snapshot falls back to the given seed. A malformed
// snapshot is logged and discarded, then falls back to the seed;
// hydration never fails on bad persisted data.
func New(repo domain.SnapshotRepository, ids domain.IDGenerator, logger domain.Logger, seed domain.Project) *Store {
	cur := seed
	loaded, err := repo.Load()
	switch {
	case err != nil:
		logger.Warn(fmt.Sprintf("discarding unreadable snapshot, starting from seed: %v", err))
	case loaded != nil:
		cur = *loaded
	}

	s := &Store{
		repo:   repo,
		ids:    ids,
		logger: logger,
		cur:    cur,
		writes: make(chan domain.Project, writeQueueSize),
		done:   make(chan struct{}),
	}
	go s.writer()
	return s
}

// writer drains the persistence queue in order.
func (s *Store) writer() {
	defer close(s.done)
	for p := range s.writes {
		if err := s.repo.Save(p); err != nil {
			s.logger.Warn(fmt.Sprintf("persist project snapshot: %v", err))
		}
	}
}

// Close flushes pending writes and stops the writer goroutine.
func (s *Store) Close() {
	s.once.Do(func() {
		close(s.writes)
	})
	<-s.done
}

// apply swaps in the next canonical value and schedules persistence.
// Called for every mutation, including no-ops: the result is still a
// structurally new value and still gets written.
func (s *Store) apply(next domain.Project) {
	s.cur = next
	s.writes <- next.Clone()
}

// Project returns a copy of the current canonical state.
func (s *Store) Project() domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Clone()
}

// Projection returns the display projection of the current state.
func (s *Store) Projection() domain.Projection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Projected(s.cur)
}

// SetCredits replaces the project's credit budget.
func (s *Store) SetCredits(credits float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(domain.SetCredits(s.cur, credits))
}

// SetHourlyRate replaces the project's hourly rate.
func (s *Store) SetHourlyRate(rate float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(domain.SetHourlyRate(s.cur, rate))
}

// ToggleList flips the expanded flag of the given list.
func (s *Store) ToggleList(listID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(domain.ToggleList(s.cur, listID))
}

// AddList appends a new list and returns its generated id.
func (s *Store) AddList() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.ids.NewID()
	s.apply(domain.AddList(s.cur, id))
	return id
}

// RenameList replaces the name of the given list.
func (s *Store) RenameList(listID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(domain.RenameList(s.cur, listID, name))
}

// AddTask appends a new task to the given list and returns its
// generated id. The id is generated even when the list does not exist;
// the mutation is then a no-op.
func (s *Store) AddTask(listID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.ids.NewID()
	s.apply(domain.AddTask(s.cur, listID, id))
	return id
}

// UpdateTask merges the patch into the given task.
func (s *Store) UpdateTask(listID, taskID string, patch domain.TaskPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(domain.UpdateTask(s.cur, listID, taskID, patch))
}
