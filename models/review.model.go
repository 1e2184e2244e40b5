package models

// Review is a learner's course review. The backend does not enforce
// one-review-per-learner; the dashboard submits at most one per action.
type Review struct {
	ID          string `json:"_id"`
	UserID      string `json:"userId"`
	UserName    string `json:"userName"`
	CourseID    string `json:"courseId"`
	CourseTitle string `json:"courseTitle"`
	Rating      int    `json:"rating"`
	Review      string `json:"review"`
	CreatedAt   string `json:"createdAt,omitempty"`
}
