package content

import "time"

// Entry is one editable block of site copy, addressed by (section, key).
type Entry struct {
	ID          string    `json:"id"`
	Section     string    `json:"section"`
	Key         string    `json:"key"`
	Content     string    `json:"content"`
	ContentType string    `json:"content_type"`
	UpdatedBy   string    `json:"updated_by"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Input carries an upsert request.
type Input struct {
	Section     string `json:"section"`
	Key         string `json:"key"`
	Content     string `json:"content"`
	ContentType string `json:"content_type"`
}
