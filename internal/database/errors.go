package database

import "errors"

// Storage-level errors surfaced to the service layer
var (
	// ErrTagMissing indicates a task create/update referenced a tag id that
	// does not exist. The check runs inside the same transaction as the
	// write, so a concurrent tag deletion cannot slip between the two.
	ErrTagMissing = errors.New("referenced tag does not exist")
)
