package task

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is the authoritative in-memory task collection bound to one
// tasks file. Tasks keep insertion order; ids are handed out
// monotonically and never reused, even after deletions.
//
// A Store is not safe for concurrent use. Mutations are in-memory only
// until Save is called.
type Store struct {
	tasks  []Task
	nextID uint64
	path   string
}

// NewStore returns an empty store bound to the given tasks file path.
// The file is not read until Load is called.
func NewStore(path string) *Store {
	return &Store{
		nextID: 1,
		path:   path,
	}
}

// Path returns the tasks file path the store is bound to.
func (s *Store) Path() string {
	return s.path
}

// Load reads the tasks file and replaces the in-memory collection.
//
// A missing file or a file with only whitespace resets the store to
// empty with the next id at 1; neither is an error. A file that exists
// but does not parse, or that carries a priority tag outside the three
// known levels, returns a *MalformedDataError.
//
// Files written before ids existed decode with id 0. After parsing,
// every zero-id task is assigned a fresh id one past the highest id
// already present, in collection order, so old files load transparently.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.tasks = nil
			s.nextID = 1
			return nil
		}
		return fmt.Errorf("read tasks file: %w", err)
	}

	if strings.TrimSpace(string(data)) == "" {
		s.tasks = nil
		s.nextID = 1
		return nil
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return &MalformedDataError{Path: s.path, Err: err}
	}

	var maxID uint64
	for i := range tasks {
		tasks[i].normalize()
		// An absent priority defaults to Medium, but a tag outside the
		// three known levels is corrupt data, not a missing field.
		if !tasks[i].Priority.Known() {
			return &MalformedDataError{
				Path: s.path,
				Err:  fmt.Errorf("task %d: unknown priority %q", i, tasks[i].Priority),
			}
		}
		if tasks[i].ID > maxID {
			maxID = tasks[i].ID
		}
	}
	for i := range tasks {
		if tasks[i].ID == 0 {
			maxID++
			tasks[i].ID = maxID
		}
	}

	s.tasks = tasks
	s.nextID = maxID + 1
	return nil
}

// Save writes the full collection to the tasks file with 2-space
// indentation. The file is written to a temporary sibling and renamed
// into place, so a reader never observes a partial write.
func (s *Store) Save() error {
	tasks := s.tasks
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp tasks file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write tasks file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close tasks file: %w", err)
	}
	// CreateTemp makes the file 0600; match the usual data-file mode.
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod tasks file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace tasks file: %w", err)
	}
	return nil
}

// Add appends a new task with the next available id, default priority
// Medium, and returns the assigned id. A description that is empty after
// trimming is rejected with *EmptyFieldError; the store is the
// authoritative enforcement point for this.
func (s *Store) Add(description string) (uint64, error) {
	if strings.TrimSpace(description) == "" {
		return 0, &EmptyFieldError{Field: "description"}
	}
	id := s.nextID
	s.tasks = append(s.tasks, NewTask(id, description))
	s.nextID++
	return id, nil
}

// FindIndex returns the position of the task with the given id. Positions
// and ids diverge once anything has been deleted, so lookup is always by
// id equality.
func (s *Store) FindIndex(id uint64) (int, bool) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// Get returns a pointer to the task with the given id, or *NotFoundError.
// The pointer stays valid until the next mutation of the collection.
func (s *Store) Get(id uint64) (*Task, error) {
	if i, ok := s.FindIndex(id); ok {
		return &s.tasks[i], nil
	}
	return nil, &NotFoundError{ID: id}
}

// Complete marks the task with the given id as done and returns a
// confirmation message. Completing an already-completed task is a no-op.
func (s *Store) Complete(id uint64) (string, error) {
	t, err := s.Get(id)
	if err != nil {
		return "", err
	}
	t.MarkCompleted()
	return fmt.Sprintf("Completed task: %s", t.Description), nil
}

// ChangePriority raises (up=true) or lowers (up=false) the priority of
// the task with the given id and returns a confirmation message.
func (s *Store) ChangePriority(id uint64, up bool) (string, error) {
	t, err := s.Get(id)
	if err != nil {
		return "", err
	}
	if up {
		t.Prioritize()
		return fmt.Sprintf("Prioritized task: %s", t.Description), nil
	}
	t.Deprioritize()
	return fmt.Sprintf("Deprioritized task: %s", t.Description), nil
}

// Rename replaces the description of the task with the given id and
// returns a message carrying both the old and the new description.
func (s *Store) Rename(id uint64, description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", &EmptyFieldError{Field: "description"}
	}
	t, err := s.Get(id)
	if err != nil {
		return "", err
	}
	old := t.Description
	t.Rename(description)
	return fmt.Sprintf("Description of task %d changed.\n\tOld: %q\n\tNew: %q", id, old, t.Description), nil
}

// Delete removes the task with the given id and returns a confirmation
// message. Remaining tasks keep their ids and relative order.
func (s *Store) Delete(id uint64) (string, error) {
	i, ok := s.FindIndex(id)
	if !ok {
		return "", &NotFoundError{ID: id}
	}
	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return fmt.Sprintf("Deleted task %d\n\t%q", id, removed.Description), nil
}

// ClearCompleted removes every completed task, preserving the relative
// order of the rest, and returns the number removed.
func (s *Store) ClearCompleted() int {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	s.tasks = kept
	return removed
}

// Tasks returns the tasks in store order. The slice is shared with the
// store; callers must not grow it.
func (s *Store) Tasks() []Task {
	return s.tasks
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	return len(s.tasks)
}

// NextID returns the id the next Add will assign.
func (s *Store) NextID() uint64 {
	return s.nextID
}
