package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/dotodo/todos/internal/testutil"
)

func TestCreateTag(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)

	tag, err := repo.CreateTag(context.Background(), "Work", "#FF5733")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if tag.ID == 0 {
		t.Error("Expected tag ID to be set")
	}
	if tag.Title != "Work" {
		t.Errorf("Expected title 'Work', got '%s'", tag.Title)
	}
	if tag.Color != "#FF5733" {
		t.Errorf("Expected color '#FF5733', got '%s'", tag.Color)
	}
}

func TestGetAllTags_SortedByTitle(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)

	testutil.CreateTestTag(t, db, "Work", "#FB2C36")
	testutil.CreateTestTag(t, db, "Errands", "#2B7FFF")
	testutil.CreateTestTag(t, db, "Home", "#00C951")

	tags, err := repo.GetAllTags(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(tags) != 3 {
		t.Fatalf("Expected 3 tags, got %d", len(tags))
	}

	want := []string{"Errands", "Home", "Work"}
	for i, title := range want {
		if tags[i].Title != title {
			t.Errorf("Expected tag %d to be '%s', got '%s'", i, title, tags[i].Title)
		}
	}
}

func TestGetTagByID_NotFound(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.GetTagByID(context.Background(), 999)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows, got %v", err)
	}
}

func TestUpdateTag(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)

	id := testutil.CreateTestTag(t, db, "Work", "#FF5733")

	title := "Office"
	color := "#2B7FFF"
	if _, err := repo.UpdateTag(context.Background(), id, &title, &color); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tag, err := repo.GetTagByID(context.Background(), id)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if tag.Title != "Office" || tag.Color != "#2B7FFF" {
		t.Errorf("Expected updated tag, got %+v", tag)
	}
}

func TestUpdateTag_PartialKeepsOtherField(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)

	id := testutil.CreateTestTag(t, db, "Work", "#FF5733")

	// The merge with stored values happens inside the update transaction,
	// so a color-only update cannot clobber the title
	color := "#2B7FFF"
	updated, err := repo.UpdateTag(context.Background(), id, nil, &color)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Title != "Work" || updated.Color != "#2B7FFF" {
		t.Errorf("Expected title kept and color changed, got %+v", updated)
	}

	stored, err := repo.GetTagByID(context.Background(), id)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stored.Title != "Work" || stored.Color != "#2B7FFF" {
		t.Errorf("Expected persisted record to match, got %+v", stored)
	}
}

func TestUpdateTag_NotFound(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)

	title := "Nope"
	_, err := repo.UpdateTag(context.Background(), 999, &title, nil)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows, got %v", err)
	}
}

func TestDeleteTag_CascadesToTasks(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)

	tagID := testutil.CreateTestTag(t, db, "Work", "#FF5733")
	otherTagID := testutil.CreateTestTag(t, db, "Home", "#00C951")
	testutil.CreateTestTask(t, db, tagID, "Write report")
	testutil.CreateTestTask(t, db, tagID, "Send email")
	keptID := testutil.CreateTestTask(t, db, otherTagID, "Buy groceries")

	if err := repo.DeleteTag(context.Background(), tagID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tasks, err := repo.GetAllTasks(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("Expected 1 surviving task, got %d", len(tasks))
	}
	if tasks[0].ID != keptID {
		t.Errorf("Expected surviving task %d, got %d", keptID, tasks[0].ID)
	}
}

func TestCreateTask(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)

	tagID := testutil.CreateTestTag(t, db, "Work", "#FF5733")

	task, err := repo.CreateTask(context.Background(), "Write report", "Quarterly numbers", tagID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID == 0 {
		t.Error("Expected task ID to be set")
	}
	if task.Title != "Write report" {
		t.Errorf("Expected title 'Write report', got '%s'", task.Title)
	}
	if task.Description != "Quarterly numbers" {
		t.Errorf("Expected description to round-trip, got '%s'", task.Description)
	}
	if task.IsDone {
		t.Error("Expected new task to start not done")
	}
	if task.Tag.ID != tagID || task.Tag.Title != "Work" {
		t.Errorf("Expected embedded tag, got %+v", task.Tag)
	}
}

func TestCreateTask_MissingTag(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.CreateTask(context.Background(), "Orphan", "", 999)
	if !errors.Is(err, ErrTagMissing) {
		t.Fatalf("Expected ErrTagMissing, got %v", err)
	}

	// The insert must not have gone through
	tasks, err := repo.GetAllTasks(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Expected no tasks persisted, got %d", len(tasks))
	}
}

func TestUpdateTask_PartialUpdate(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)

	tagID := testutil.CreateTestTag(t, db, "Work", "#FF5733")
	taskID := testutil.CreateTestTask(t, db, tagID, "Write report")

	done := true
	task, err := repo.UpdateTask(context.Background(), taskID, nil, nil, &done, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !task.IsDone {
		t.Error("Expected task to be done")
	}
	if task.Title != "Write report" {
		t.Errorf("Expected untouched title, got '%s'", task.Title)
	}
	if task.Tag.ID != tagID {
		t.Errorf("Expected untouched tag, got %+v", task.Tag)
	}
}

func TestUpdateTask_ChangeTag(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)

	workID := testutil.CreateTestTag(t, db, "Work", "#FF5733")
	homeID := testutil.CreateTestTag(t, db, "Home", "#00C951")
	taskID := testutil.CreateTestTask(t, db, workID, "Write report")

	task, err := repo.UpdateTask(context.Background(), taskID, nil, nil, nil, &homeID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.Tag.ID != homeID || task.Tag.Title != "Home" {
		t.Errorf("Expected tag to change to Home, got %+v", task.Tag)
	}
}

func TestUpdateTask_MissingTag(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)

	tagID := testutil.CreateTestTag(t, db, "Work", "#FF5733")
	taskID := testutil.CreateTestTask(t, db, tagID, "Write report")

	missing := 999
	_, err := repo.UpdateTask(context.Background(), taskID, nil, nil, nil, &missing)
	if !errors.Is(err, ErrTagMissing) {
		t.Fatalf("Expected ErrTagMissing, got %v", err)
	}

	// Original tag must survive the rolled back transaction
	task, err := repo.GetTaskByID(context.Background(), taskID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.Tag.ID != tagID {
		t.Errorf("Expected original tag %d, got %d", tagID, task.Tag.ID)
	}
}

func TestUpdateTask_NotFound(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)

	title := "Nope"
	_, err := repo.UpdateTask(context.Background(), 999, &title, nil, nil, nil)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows, got %v", err)
	}
}

func TestDeleteTask_ReturnsRemovedRecord(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)

	tagID := testutil.CreateTestTag(t, db, "Work", "#FF5733")
	taskID := testutil.CreateTestTask(t, db, tagID, "Write report")
	testutil.MarkTaskDone(t, db, taskID)

	task, err := repo.DeleteTask(context.Background(), taskID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID != taskID || task.Title != "Write report" || !task.IsDone {
		t.Errorf("Expected removed record back, got %+v", task)
	}

	_, err = repo.GetTaskByID(context.Background(), taskID)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected task to be gone, got %v", err)
	}
}

func TestDeleteTask_NotFound(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.DeleteTask(context.Background(), 999)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows, got %v", err)
	}
}
