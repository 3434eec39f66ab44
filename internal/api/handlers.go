package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dotodo/todos/internal/models"
	"github.com/dotodo/todos/internal/services/tag"
	"github.com/dotodo/todos/internal/services/task"
)

// Request DTOs. Pointer fields distinguish "absent" from "zero value" so
// PATCH only touches the fields present in the payload.

type createTodoRequest struct {
	Title       string `json:"title"`
	TagID       int    `json:"tagId"`
	Description string `json:"description"`
}

type updateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsDone      *bool   `json:"isDone"`
	TagID       *int    `json:"tagId"`
}

type createTagRequest struct {
	Title string `json:"title"`
	Color string `json:"color"`
}

type updateTagRequest struct {
	Title *string `json:"title"`
	Color *string `json:"color"`
}

// pathID parses the :id path parameter. A non-numeric id is a client error,
// not a missing record.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}

// Todo handlers

func (s *Server) handleCreateTodo(c *gin.Context) {
	var req createTodoRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.tasks.CreateTask(c.Request.Context(), task.CreateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		TagID:       req.TagID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleListTodos(c *gin.Context) {
	tasks, err := s.tasks.GetTasks(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	// An empty store serializes as [], not null
	if tasks == nil {
		tasks = []*models.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) handleGetTodo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	t, err := s.tasks.GetTask(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

func (s *Server) handleUpdateTodo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateTodoRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := s.tasks.UpdateTask(c.Request.Context(), task.UpdateTaskRequest{
		TaskID:      id,
		Title:       req.Title,
		Description: req.Description,
		IsDone:      req.IsDone,
		TagID:       req.TagID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDeleteTodo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	removed, err := s.tasks.DeleteTask(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, removed)
}

// Tag handlers

func (s *Server) handleListTags(c *gin.Context) {
	tags, err := s.tags.GetTags(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	if tags == nil {
		tags = []*models.Tag{}
	}
	c.JSON(http.StatusOK, tags)
}

func (s *Server) handleGetTag(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	t, err := s.tags.GetTag(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

func (s *Server) handleCreateTag(c *gin.Context) {
	var req createTagRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.tags.CreateTag(c.Request.Context(), tag.CreateTagRequest{
		Title: req.Title,
		Color: req.Color,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleUpdateTag(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateTagRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := s.tags.UpdateTag(c.Request.Context(), tag.UpdateTagRequest{
		ID:    id,
		Title: req.Title,
		Color: req.Color,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
