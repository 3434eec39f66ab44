// Package state holds the client-side view-model: the server's tasks
// mirrored into an active list and a completed list.
package state

import "github.com/dotodo/todos/internal/models"

// List identifies which of the two task lists a task lives in
type List int

const (
	ListActive List = iota
	ListCompleted
)

func (l List) String() string {
	if l == ListCompleted {
		return "completed"
	}
	return "active"
}

// Lists is the in-memory mirror of server state. It is mutated only from the
// UI event loop and the pipeline (which serializes its own access); the ids
// it holds are always a subset of the store ids as last observed.
type Lists struct {
	active    []models.Task
	completed []models.Task
}

// NewLists creates an empty view-model
func NewLists() *Lists {
	return &Lists{}
}

// Hydrate replaces both lists from a fresh server snapshot, splitting tasks
// on their isDone flag
func (s *Lists) Hydrate(tasks []models.Task) {
	s.active = s.active[:0]
	s.completed = s.completed[:0]
	for _, t := range tasks {
		if t.IsDone {
			s.completed = append(s.completed, t)
		} else {
			s.active = append(s.active, t)
		}
	}
}

// Active returns the active list in insertion order
func (s *Lists) Active() []models.Task {
	return s.active
}

// Completed returns the completed list in insertion order
func (s *Lists) Completed() []models.Task {
	return s.completed
}

// Get returns the task with the given id and the list it lives in
func (s *Lists) Get(id int) (models.Task, List, bool) {
	for _, t := range s.active {
		if t.ID == id {
			return t, ListActive, true
		}
	}
	for _, t := range s.completed {
		if t.ID == id {
			return t, ListCompleted, true
		}
	}
	return models.Task{}, ListActive, false
}

// Append adds a task to the end of the given list
func (s *Lists) Append(list List, task models.Task) {
	if list == ListCompleted {
		s.completed = append(s.completed, task)
		return
	}
	s.active = append(s.active, task)
}

// Remove takes the task with the given id out of whichever list holds it,
// returning the removed task and its list
func (s *Lists) Remove(id int) (models.Task, List, bool) {
	for i, t := range s.active {
		if t.ID == id {
			s.active = append(s.active[:i], s.active[i+1:]...)
			return t, ListActive, true
		}
	}
	for i, t := range s.completed {
		if t.ID == id {
			s.completed = append(s.completed[:i], s.completed[i+1:]...)
			return t, ListCompleted, true
		}
	}
	return models.Task{}, ListActive, false
}
