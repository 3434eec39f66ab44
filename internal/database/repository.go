package database

import (
	"context"
	"database/sql"

	"github.com/dotodo/todos/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*TagRepo
	*TaskRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		TagRepo:  &TagRepo{db: db},
		TaskRepo: &TaskRepo{db: db},
	}
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)

// Wrapper methods for TagRepo

func (r *Repository) CreateTag(ctx context.Context, title, color string) (*models.Tag, error) {
	return r.TagRepo.Create(ctx, title, color)
}

func (r *Repository) GetAllTags(ctx context.Context) ([]*models.Tag, error) {
	return r.TagRepo.GetAll(ctx)
}

func (r *Repository) GetTagByID(ctx context.Context, id int) (*models.Tag, error) {
	return r.TagRepo.GetByID(ctx, id)
}

func (r *Repository) UpdateTag(ctx context.Context, id int, title, color *string) (*models.Tag, error) {
	return r.TagRepo.Update(ctx, id, title, color)
}

func (r *Repository) DeleteTag(ctx context.Context, id int) error {
	return r.TagRepo.Delete(ctx, id)
}

// Wrapper methods for TaskRepo

func (r *Repository) CreateTask(ctx context.Context, title, description string, tagID int) (*models.Task, error) {
	return r.TaskRepo.Create(ctx, title, description, tagID)
}

func (r *Repository) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	return r.TaskRepo.GetAll(ctx)
}

func (r *Repository) GetTaskByID(ctx context.Context, id int) (*models.Task, error) {
	return r.TaskRepo.GetByID(ctx, id)
}

func (r *Repository) UpdateTask(ctx context.Context, id int, title, description *string, isDone *bool, tagID *int) (*models.Task, error) {
	return r.TaskRepo.Update(ctx, id, title, description, isDone, tagID)
}

func (r *Repository) DeleteTask(ctx context.Context, id int) (*models.Task, error) {
	return r.TaskRepo.Delete(ctx, id)
}
