package models

// Video is an uploaded course video. Content is tied to a course by name:
// CourseName must equal the course's Title, there is no foreign key.
type Video struct {
	ID         string `json:"_id"`
	Title      string `json:"title"`
	CourseName string `json:"courseName"`
	URL        string `json:"videoUrl,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// Note is an uploaded course document, scoped by name like Video.
type Note struct {
	ID         string `json:"_id"`
	Title      string `json:"title"`
	CourseName string `json:"courseName"`
	URL        string `json:"fileUrl,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}
