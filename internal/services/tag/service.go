package tag

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/dotodo/todos/internal/database"
	"github.com/dotodo/todos/internal/models"
)

// Hex color regex pattern
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Service defines all tag-related business operations
type Service interface {
	// Read operations
	GetTags(ctx context.Context) ([]*models.Tag, error)
	GetTag(ctx context.Context, id int) (*models.Tag, error)

	// Write operations
	CreateTag(ctx context.Context, req CreateTagRequest) (*models.Tag, error)
	UpdateTag(ctx context.Context, req UpdateTagRequest) (*models.Tag, error)
	DeleteTag(ctx context.Context, id int) error
}

// CreateTagRequest encapsulates data for creating a tag
type CreateTagRequest struct {
	Title string
	Color string // Hex color like #FF5733
}

// UpdateTagRequest encapsulates data for updating a tag.
// Pointer fields are optional - nil means don't update.
type UpdateTagRequest struct {
	ID    int
	Title *string
	Color *string
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new tag service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// GetTags retrieves all tags
func (s *service) GetTags(ctx context.Context) ([]*models.Tag, error) {
	return s.repo.GetAllTags(ctx)
}

// GetTag retrieves a single tag by id
func (s *service) GetTag(ctx context.Context, id int) (*models.Tag, error) {
	if id <= 0 {
		return nil, ErrInvalidTagID
	}

	t, err := s.repo.GetTagByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTagNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return t, nil
}

// CreateTag creates a new tag with validation
func (s *service) CreateTag(ctx context.Context, req CreateTagRequest) (*models.Tag, error) {
	if req.Title == "" {
		return nil, ErrEmptyTitle
	}
	if utf8.RuneCountInString(req.Title) > 50 {
		return nil, ErrTitleTooLong
	}
	if !hexColorRegex.MatchString(req.Color) {
		return nil, ErrInvalidColor
	}

	t, err := s.repo.CreateTag(ctx, req.Title, req.Color)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return t, nil
}

// UpdateTag applies a partial update to an existing tag
func (s *service) UpdateTag(ctx context.Context, req UpdateTagRequest) (*models.Tag, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidTagID
	}
	if req.Title != nil && *req.Title == "" {
		return nil, ErrEmptyTitle
	}
	if req.Title != nil && utf8.RuneCountInString(*req.Title) > 50 {
		return nil, ErrTitleTooLong
	}
	if req.Color != nil && !hexColorRegex.MatchString(*req.Color) {
		return nil, ErrInvalidColor
	}

	// The repository merges nil fields with stored values inside one
	// transaction, so concurrent partial updates cannot clobber each other.
	t, err := s.repo.UpdateTag(ctx, req.ID, req.Title, req.Color)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTagNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	return t, nil
}

// DeleteTag deletes a tag. Tasks referencing the tag are removed by the
// store's cascade constraint.
func (s *service) DeleteTag(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidTagID
	}

	if err := s.repo.DeleteTag(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTagNotFound
		}
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}
