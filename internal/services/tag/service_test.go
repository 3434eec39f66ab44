package tag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dotodo/todos/internal/database"
	"github.com/dotodo/todos/internal/testutil"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewService(database.NewRepository(db))
}

func TestCreateTag(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	result, err := svc.CreateTag(context.Background(), CreateTagRequest{
		Title: "Work",
		Color: "#FF5733",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.ID == 0 {
		t.Error("Expected tag ID to be set")
	}
	if result.Title != "Work" {
		t.Errorf("Expected title 'Work', got '%s'", result.Title)
	}
	if result.Color != "#FF5733" {
		t.Errorf("Expected color '#FF5733', got '%s'", result.Color)
	}
}

func TestCreateTag_EmptyTitle(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, err := svc.CreateTag(context.Background(), CreateTagRequest{
		Title: "",
		Color: "#FF5733",
	})
	if !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("Expected ErrEmptyTitle, got %v", err)
	}
}

func TestCreateTag_TitleTooLong(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, err := svc.CreateTag(context.Background(), CreateTagRequest{
		Title: strings.Repeat("a", 51),
		Color: "#FF5733",
	})
	if !errors.Is(err, ErrTitleTooLong) {
		t.Errorf("Expected ErrTitleTooLong, got %v", err)
	}
}

func TestCreateTag_MultibyteTitleCountsRunes(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	// 40 characters, 80 bytes: within the 50-character bound
	_, err := svc.CreateTag(context.Background(), CreateTagRequest{
		Title: strings.Repeat("ü", 40),
		Color: "#FF5733",
	})
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	_, err = svc.CreateTag(context.Background(), CreateTagRequest{
		Title: strings.Repeat("ü", 51),
		Color: "#FF5733",
	})
	if !errors.Is(err, ErrTitleTooLong) {
		t.Errorf("Expected ErrTitleTooLong, got %v", err)
	}
}

func TestCreateTag_InvalidColor(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	for _, color := range []string{"", "red", "#FFF", "#GGGGGG", "FF5733"} {
		_, err := svc.CreateTag(context.Background(), CreateTagRequest{
			Title: "Work",
			Color: color,
		})
		if !errors.Is(err, ErrInvalidColor) {
			t.Errorf("Color %q: expected ErrInvalidColor, got %v", color, err)
		}
	}
}

func TestGetTag_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, err := svc.GetTag(context.Background(), 999)
	if !errors.Is(err, ErrTagNotFound) {
		t.Errorf("Expected ErrTagNotFound, got %v", err)
	}
}

func TestUpdateTag_PartialUpdate(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	created, err := svc.CreateTag(context.Background(), CreateTagRequest{
		Title: "Work",
		Color: "#FF5733",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	newColor := "#2B7FFF"
	updated, err := svc.UpdateTag(context.Background(), UpdateTagRequest{
		ID:    created.ID,
		Color: &newColor,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Title != "Work" {
		t.Errorf("Expected untouched title, got '%s'", updated.Title)
	}
	if updated.Color != newColor {
		t.Errorf("Expected color '%s', got '%s'", newColor, updated.Color)
	}
}

func TestUpdateTag_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	title := "Nope"
	_, err := svc.UpdateTag(context.Background(), UpdateTagRequest{ID: 999, Title: &title})
	if !errors.Is(err, ErrTagNotFound) {
		t.Errorf("Expected ErrTagNotFound, got %v", err)
	}
}

func TestDeleteTag(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	created, err := svc.CreateTag(context.Background(), CreateTagRequest{
		Title: "Work",
		Color: "#FF5733",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := svc.DeleteTag(context.Background(), created.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = svc.GetTag(context.Background(), created.ID)
	if !errors.Is(err, ErrTagNotFound) {
		t.Errorf("Expected tag to be gone, got %v", err)
	}
}

func TestDeleteTag_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	err := svc.DeleteTag(context.Background(), 999)
	if !errors.Is(err, ErrTagNotFound) {
		t.Errorf("Expected ErrTagNotFound, got %v", err)
	}
}
