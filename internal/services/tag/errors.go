package tag

import "errors"

// Tag-related errors
var (
	// Validation errors
	ErrEmptyTitle   = errors.New("tag title cannot be empty")
	ErrTitleTooLong = errors.New("tag title cannot exceed 50 characters")
	ErrInvalidColor = errors.New("invalid color format (must be hex color like #FFFFFF)")
	ErrInvalidTagID = errors.New("invalid tag ID")

	// Business logic errors
	ErrTagNotFound = errors.New("tag not found")
)
