package database

import (
	"context"

	"github.com/dotodo/todos/internal/models"
)

// TagReader defines read operations for tags.
type TagReader interface {
	GetAllTags(ctx context.Context) ([]*models.Tag, error)
	GetTagByID(ctx context.Context, id int) (*models.Tag, error)
}

// TagWriter defines write operations for tags.
type TagWriter interface {
	CreateTag(ctx context.Context, title, color string) (*models.Tag, error)
	UpdateTag(ctx context.Context, id int, title, color *string) (*models.Tag, error)
	DeleteTag(ctx context.Context, id int) error
}

// TagRepository combines all tag-related operations.
type TagRepository interface {
	TagReader
	TagWriter
}

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetAllTasks(ctx context.Context) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, id int) (*models.Task, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	CreateTask(ctx context.Context, title, description string, tagID int) (*models.Task, error)
	UpdateTask(ctx context.Context, id int, title, description *string, isDone *bool, tagID *int) (*models.Task, error)
	DeleteTask(ctx context.Context, id int) (*models.Task, error)
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}
