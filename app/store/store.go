// Package store keeps the ordered list of tasks in memory and persists it through a Backend
// after every mutation. Tasks are addressed by their position in the list, zero-based.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/taskman/app/task"
)

//go:generate moq -out mocks/backend.go -pkg mocks -skip-ensure -fmt goimports . Backend

// ErrIndexOutOfRange returned by Update, Delete and Get for a position outside of the list
var ErrIndexOutOfRange = errors.New("task index out of range")

// Backend loads and saves the whole list of tasks. Load of a missing file should return
// an error wrapping fs.ErrNotExist.
type Backend interface {
	Load() ([]task.Task, error)
	Save(tasks []task.Task) error
	String() string
}

// Repeater repeats failed function
type Repeater interface {
	Do(ctx context.Context, fun func() error, errors ...error) (err error)
}

// Store is an ordered, persisted list of tasks. Not thread safe.
type Store struct {
	backend  Backend
	repeater Repeater
	tasks    []task.Task
}

// New makes an empty store for the backend. Call Load to read persisted tasks.
// Repeater is optional, with nil every save is attempted once.
func New(backend Backend, rptr Repeater) *Store {
	return &Store{backend: backend, repeater: rptr, tasks: []task.Task{}}
}

// Load replaces in-memory tasks with persisted ones. Missing file gives an empty store and no error,
// any other failure gives an empty store and the error describing it.
func (s *Store) Load() error {
	s.tasks = []task.Task{}
	tasks, err := s.backend.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("[INFO] no tasks file %s, starting with an empty list", s.backend)
			return nil
		}
		return fmt.Errorf("load tasks from %s: %w", s.backend, err)
	}
	for _, t := range tasks {
		t.ID = uuid.NewString()
		s.tasks = append(s.tasks, t)
	}
	log.Printf("[DEBUG] loaded %d tasks from %s", len(s.tasks), s.backend)
	return nil
}

// Save writes all tasks to the backend, overwriting previous content
func (s *Store) Save() error {
	save := func() error { return s.backend.Save(s.List()) }
	var err error
	if s.repeater != nil {
		err = s.repeater.Do(context.Background(), save)
	} else {
		err = save()
	}
	if err != nil {
		return fmt.Errorf("save tasks to %s: %w", s.backend, err)
	}
	log.Printf("[DEBUG] saved %d tasks to %s", len(s.tasks), s.backend)
	return nil
}

// Add validates and appends the task, then saves. Returns the stored task.
// A save failure is returned with the task, the task stays in memory.
func (s *Store) Add(t task.Task) (task.Task, error) {
	t, err := task.Normalize(t)
	if err != nil {
		return task.Task{}, err
	}
	t.ID = uuid.NewString()
	s.tasks = append(s.tasks, t)
	log.Printf("[INFO] task %q added", t.Name)
	return t, s.Save()
}

// List returns a copy of all tasks in the current order
func (s *Store) List() []task.Task {
	res := make([]task.Task, len(s.tasks))
	copy(res, s.tasks)
	return res
}

// Len returns number of tasks
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns task at index
func (s *Store) Get(index int) (task.Task, error) {
	if err := s.checkIndex(index); err != nil {
		return task.Task{}, err
	}
	return s.tasks[index], nil
}

// IndexOf returns the current position of the task with given id, or -1
func (s *Store) IndexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Update replaces the fields set in patch for the task at index, then saves.
// Nothing changes if index is out of range or any provided field is invalid.
func (s *Store) Update(index int, patch task.Patch) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	updated, err := patch.Apply(s.tasks[index])
	if err != nil {
		return err
	}
	s.tasks[index] = updated
	log.Printf("[INFO] task #%d %q updated", index+1, updated.Name)
	return s.Save()
}

// Delete removes the task at index, shifting the following ones, then saves.
// Returns the removed task.
func (s *Store) Delete(index int) (task.Task, error) {
	if err := s.checkIndex(index); err != nil {
		return task.Task{}, err
	}
	removed := s.tasks[index]
	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	log.Printf("[INFO] task #%d %q deleted", index+1, removed.Name)
	return removed, s.Save()
}

// Filter returns tasks matching criteria, the store is not changed
func (s *Store) Filter(c Criteria) []task.Task {
	return Filter(s.tasks, c)
}

// Sort reorders the stored tasks by key and saves the new order.
// On error, e.g. a due date which is not a real date, the order is unchanged.
func (s *Store) Sort(key SortKey, reverse bool) error {
	sorted, err := Sort(s.tasks, key, reverse)
	if err != nil {
		return err
	}
	s.tasks = sorted
	log.Printf("[DEBUG] tasks sorted by %s, reverse=%v", key, reverse)
	return s.Save()
}

// String returns the backend description
func (s *Store) String() string {
	return s.backend.String()
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.tasks) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(s.tasks))
	}
	return nil
}
