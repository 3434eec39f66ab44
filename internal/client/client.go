// Package client is the REST client the terminal UI talks to the API with.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dotodo/todos/internal/models"
)

// APIError is a non-2xx response from the server
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Client talks to the todos API server
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a client for the API at baseURL (e.g. http://localhost:3001/api)
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// TaskPatch describes a partial task update. Nil fields are omitted from the
// payload and left untouched by the server.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	IsDone      *bool   `json:"isDone,omitempty"`
	TagID       *int    `json:"tagId,omitempty"`
}

// CreateTaskParams describes a new task
type CreateTaskParams struct {
	Title       string `json:"title"`
	TagID       int    `json:"tagId"`
	Description string `json:"description,omitempty"`
}

// CreateTagParams describes a new tag
type CreateTagParams struct {
	Title string `json:"title"`
	Color string `json:"color"`
}

// Tags fetches all tags
func (c *Client) Tags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := c.do(ctx, http.MethodGet, "/tags", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// Tasks fetches all tasks with their tags resolved
func (c *Client) Tasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, "/todos", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task and returns the persisted record
func (c *Client) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	var task models.Task
	if err := c.do(ctx, http.MethodPost, "/todos", params, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a partial update to a task
func (c *Client) UpdateTask(ctx context.Context, id int, patch TaskPatch) (*models.Task, error) {
	var task models.Task
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/todos/%d", id), patch, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes a task and returns the removed record
func (c *Client) DeleteTask(ctx context.Context, id int) (*models.Task, error) {
	var task models.Task
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/todos/%d", id), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTag creates a tag and returns the persisted record
func (c *Client) CreateTag(ctx context.Context, params CreateTagParams) (*models.Tag, error) {
	var tag models.Tag
	if err := c.do(ctx, http.MethodPost, "/tags", params, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// do performs a request against the API and decodes the JSON response into
// out (when out is non-nil). Non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiResp struct {
			Error string `json:"error"`
		}
		message := resp.Status
		if json.NewDecoder(resp.Body).Decode(&apiResp) == nil && apiResp.Error != "" {
			message = apiResp.Error
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
