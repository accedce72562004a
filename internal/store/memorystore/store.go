// Package memorystore keeps tasks in a process-local map. It backs the
// "memory" driver and the service and handler tests.
package memorystore

import (
	"context"
	"sort"
	"sync"

	"task-manager/internal/model"
)

type TaskStore struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]model.Task
}

func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: make(map[int64]model.Task)}
}

// FindAll returns tasks ordered by id.
func (s *TaskStore) FindAll(ctx context.Context) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, clone(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *TaskStore) FindByID(ctx context.Context, id int64) (model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, model.ErrNotFound
	}
	return clone(t), nil
}

func (s *TaskStore) Save(ctx context.Context, t model.Task) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == 0 {
		s.nextID++
		t.ID = s.nextID
	} else if _, ok := s.tasks[t.ID]; !ok {
		return model.Task{}, model.ErrNotFound
	}

	s.tasks[t.ID] = clone(t)
	return clone(t), nil
}

func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return model.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

// Ping always succeeds; it lets the map stand in for a database in /readyz.
func (s *TaskStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// clone detaches the optional fields so callers cannot mutate stored state.
func clone(t model.Task) model.Task {
	if t.Description != nil {
		d := *t.Description
		t.Description = &d
	}
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
	return t
}
