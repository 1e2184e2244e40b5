package models

// Course is a course record as served by the platform backend.
// Courses are created and edited by admins and read-only to learners.
type Course struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}
