package models

// Tag is a category a task belongs to. Tags are created independently and
// referenced, never owned, by tasks.
type Tag struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"` // Hex color code (e.g., "#FF5733")
}
