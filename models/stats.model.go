package models

// Stats are the admin overview counters.
type Stats struct {
	TotalUsers         int `json:"totalUsers"`
	TotalCourses       int `json:"totalCourses"`
	TotalEnrollments   int `json:"totalEnrollments"`
	PendingEnrollments int `json:"pendingEnrollments"`
	TotalReviews       int `json:"totalReviews"`
}

// Analytics is the raw analytics payload. Its shape varies with backend
// versions, so it is passed through untyped.
type Analytics map[string]interface{}
