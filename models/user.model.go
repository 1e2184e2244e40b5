package models

import "regexp"

// User is the learner identity persisted locally after login.
type User struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// IsValidID reports whether id matches the backend's identifier format
// (a 24 character hex ObjectId).
func IsValidID(id string) bool {
	return objectIDPattern.MatchString(id)
}
