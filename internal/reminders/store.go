package reminders

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a referenced task does not exist.
var ErrNotFound = errors.New("reminders: task not found")

// Store keeps reminder tasks in memory.
type Store struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]Task
}

// NewStore creates an empty reminder store.
func NewStore() *Store {
	return &Store{tasks: make(map[uuid.UUID]Task)}
}

// Create inserts a new task, assigning defaults where missing.
func (s *Store) Create(_ context.Context, t Task) (Task, error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[t.ID] = t
	return t, nil
}

// Get returns the task with the given ID.
func (s *Store) Get(_ context.Context, id uuid.UUID) (Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	if !ok {
		return Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return t, nil
}

// ListDue returns pending tasks whose due time has passed, oldest first.
func (s *Store) ListDue(_ context.Context, now time.Time) ([]Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted(func(t Task) bool {
		return t.Status == StatusPending && !t.DueAt.After(now)
	}), nil
}

// ListByRole returns all tasks for an audience role, ordered by due time.
func (s *Store) ListByRole(_ context.Context, role string) ([]Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted(func(t Task) bool { return t.Role == role }), nil
}

func (s *Store) sorted(keep func(Task) bool) []Task {
	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueAt.Before(out[j].DueAt) })
	return out
}

// MarkSent transitions a pending task to sent.
func (s *Store) MarkSent(ctx context.Context, id uuid.UUID) error {
	return s.transition(id, StatusPending, StatusSent)
}

// MarkDone transitions a sent or pending task to done.
func (s *Store) MarkDone(ctx context.Context, id uuid.UUID) error {
	if err := s.transition(id, StatusSent, StatusDone); err == nil {
		return nil
	}
	return s.transition(id, StatusPending, StatusDone)
}

// Dismiss transitions any open task to dismissed.
func (s *Store) Dismiss(ctx context.Context, id uuid.UUID) error {
	if err := s.transition(id, StatusPending, StatusDismissed); err == nil {
		return nil
	}
	return s.transition(id, StatusSent, StatusDismissed)
}

func (s *Store) transition(id uuid.UUID, from, to TaskStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	if t.Status != from {
		return fmt.Errorf("task %s: cannot move %s -> %s", id, t.Status, to)
	}

	now := time.Now().UTC()
	t.Status = to
	t.UpdatedAt = now
	switch to {
	case StatusSent:
		t.SentAt = &now
	case StatusDone:
		t.CompletedAt = &now
	}
	s.tasks[id] = t
	return nil
}
