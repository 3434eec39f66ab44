package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dotodo/todos/internal/database"
	"github.com/dotodo/todos/internal/models"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTasks(ctx context.Context) ([]*models.Task, error)
	GetTask(ctx context.Context, id int) (*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id int) (*models.Task, error)
}

// CreateTaskRequest encapsulates all data needed to create a task.
// New tasks always start as not done.
type CreateTaskRequest struct {
	Title       string
	Description string
	TagID       int
}

// UpdateTaskRequest encapsulates all data needed to update a task.
// Fields with pointers are optional - nil means don't update.
type UpdateTaskRequest struct {
	TaskID      int
	Title       *string
	Description *string
	IsDone      *bool
	TagID       *int
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new task service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// GetTasks retrieves all tasks with their tags resolved
func (s *service) GetTasks(ctx context.Context) ([]*models.Task, error) {
	return s.repo.GetAllTasks(ctx)
}

// GetTask retrieves a single task by id
func (s *service) GetTask(ctx context.Context, id int) (*models.Task, error) {
	if id <= 0 {
		return nil, ErrInvalidTaskID
	}

	t, err := s.repo.GetTaskByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// CreateTask handles task creation with validation. The tag reference is
// verified by the repository inside the same transaction as the insert;
// database.ErrTagMissing surfaces unchanged for the API layer to map.
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if err := s.validateCreateTask(req); err != nil {
		return nil, err
	}

	t, err := s.repo.CreateTask(ctx, req.Title, req.Description, req.TagID)
	if err != nil {
		if errors.Is(err, database.ErrTagMissing) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return t, nil
}

// UpdateTask applies a partial update: only non-nil fields change
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if req.TaskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	if req.Title != nil && *req.Title == "" {
		return nil, ErrEmptyTitle
	}
	if req.Title != nil && utf8.RuneCountInString(*req.Title) > 100 {
		return nil, ErrTitleTooLong
	}
	if req.TagID != nil && *req.TagID <= 0 {
		return nil, ErrInvalidTagID
	}

	t, err := s.repo.UpdateTask(ctx, req.TaskID, req.Title, req.Description, req.IsDone, req.TagID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		if errors.Is(err, database.ErrTagMissing) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return t, nil
}

// DeleteTask removes a task and returns the removed record
func (s *service) DeleteTask(ctx context.Context, id int) (*models.Task, error) {
	if id <= 0 {
		return nil, ErrInvalidTaskID
	}

	t, err := s.repo.DeleteTask(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}
	return t, nil
}

// validateCreateTask validates a CreateTaskRequest
func (s *service) validateCreateTask(req CreateTaskRequest) error {
	if req.Title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(req.Title) > 100 {
		return ErrTitleTooLong
	}
	if req.TagID <= 0 {
		return ErrInvalidTagID
	}
	return nil
}
