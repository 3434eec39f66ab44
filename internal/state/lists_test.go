package state

import (
	"testing"

	"github.com/dotodo/todos/internal/models"
)

func task(id int, title string, done bool) models.Task {
	return models.Task{ID: id, Title: title, IsDone: done}
}

func TestHydrate_SplitsOnDone(t *testing.T) {
	t.Parallel()

	lists := NewLists()
	lists.Hydrate([]models.Task{
		task(1, "Write report", false),
		task(2, "Send email", true),
		task(3, "Buy groceries", false),
	})

	if got := len(lists.Active()); got != 2 {
		t.Fatalf("Expected 2 active tasks, got %d", got)
	}
	if got := len(lists.Completed()); got != 1 {
		t.Fatalf("Expected 1 completed task, got %d", got)
	}
	if lists.Active()[0].ID != 1 || lists.Active()[1].ID != 3 {
		t.Errorf("Expected insertion order preserved, got %+v", lists.Active())
	}
}

func TestHydrate_ReplacesPreviousState(t *testing.T) {
	t.Parallel()

	lists := NewLists()
	lists.Hydrate([]models.Task{task(1, "Old", false)})
	lists.Hydrate([]models.Task{task(2, "New", true)})

	if len(lists.Active()) != 0 {
		t.Errorf("Expected old active tasks dropped, got %+v", lists.Active())
	}
	if len(lists.Completed()) != 1 || lists.Completed()[0].ID != 2 {
		t.Errorf("Expected only the new task, got %+v", lists.Completed())
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	lists := NewLists()
	lists.Hydrate([]models.Task{
		task(1, "Write report", false),
		task(2, "Send email", true),
	})

	got, list, found := lists.Get(2)
	if !found {
		t.Fatal("Expected task 2 to be found")
	}
	if list != ListCompleted {
		t.Errorf("Expected ListCompleted, got %v", list)
	}
	if got.Title != "Send email" {
		t.Errorf("Expected 'Send email', got '%s'", got.Title)
	}

	if _, _, found := lists.Get(999); found {
		t.Error("Expected task 999 to be missing")
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()

	lists := NewLists()
	lists.Hydrate([]models.Task{
		task(1, "Write report", false),
		task(2, "Send email", false),
	})

	removed, list, found := lists.Remove(1)
	if !found {
		t.Fatal("Expected task 1 to be removed")
	}
	if list != ListActive {
		t.Errorf("Expected ListActive, got %v", list)
	}
	if removed.Title != "Write report" {
		t.Errorf("Expected removed task back, got %+v", removed)
	}
	if len(lists.Active()) != 1 || lists.Active()[0].ID != 2 {
		t.Errorf("Expected only task 2 left, got %+v", lists.Active())
	}

	if _, _, found := lists.Remove(1); found {
		t.Error("Expected second removal to report missing")
	}
}

func TestAppend(t *testing.T) {
	t.Parallel()

	lists := NewLists()
	lists.Append(ListActive, task(1, "Write report", false))
	lists.Append(ListCompleted, task(2, "Send email", true))

	if len(lists.Active()) != 1 || len(lists.Completed()) != 1 {
		t.Errorf("Expected one task per list, got %d/%d",
			len(lists.Active()), len(lists.Completed()))
	}
}

func TestListString(t *testing.T) {
	t.Parallel()

	if ListActive.String() != "active" || ListCompleted.String() != "completed" {
		t.Error("Unexpected List string values")
	}
}
