package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dotodo/todos/internal/database"
	"github.com/dotodo/todos/internal/services/tag"
	"github.com/dotodo/todos/internal/services/task"
)

// writeError maps service errors onto the HTTP taxonomy: validation and
// referential errors are client errors with a descriptive message, missing
// records are 404, and anything unexpected is a generic 500 that does not
// leak internals.
func writeError(c *gin.Context, err error) {
	switch {
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, database.ErrTagMissing):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, task.ErrTaskNotFound), errors.Is(err, tag.ErrTagNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		slog.Error("request failed",
			"request_id", c.GetString("request_id"),
			"path", c.Request.URL.Path,
			"error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, task.ErrEmptyTitle) ||
		errors.Is(err, task.ErrTitleTooLong) ||
		errors.Is(err, task.ErrInvalidTaskID) ||
		errors.Is(err, task.ErrInvalidTagID) ||
		errors.Is(err, tag.ErrEmptyTitle) ||
		errors.Is(err, tag.ErrTitleTooLong) ||
		errors.Is(err, tag.ErrInvalidColor) ||
		errors.Is(err, tag.ErrInvalidTagID)
}
