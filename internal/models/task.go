package models

// Task represents a single todo item. Every task references exactly one tag,
// and the tag is resolved to a full Tag record whenever a task crosses the
// API boundary. A task is never valid with a dangling tag reference.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	IsDone      bool   `json:"isDone"`
	Tag         Tag    `json:"tag"`
}
