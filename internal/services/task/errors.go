package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle    = errors.New("task title cannot be empty")
	ErrTitleTooLong  = errors.New("task title cannot exceed 100 characters")
	ErrInvalidTaskID = errors.New("invalid task ID")
	ErrInvalidTagID  = errors.New("invalid tag ID")

	// Business logic errors
	ErrTaskNotFound = errors.New("task not found")
)
