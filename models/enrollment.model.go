package models

// Enrollment status values as the backend stores them. A learner with no
// enrollment record at all is synthesized as StatusNotEnrolled.
const (
	StatusNotEnrolled = "not_enrolled"
	StatusPending     = "pending"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
)

// Enrollment is one (learner, course) enrollment record. The backend keeps
// one per pair in practice but does not enforce it.
type Enrollment struct {
	ID          string `json:"_id"`
	UserID      string `json:"userId"`
	CourseID    string `json:"courseId"`
	UserName    string `json:"userName"`
	CourseTitle string `json:"courseTitle"`
	PaymentID   string `json:"paymentId"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// ValidTransition reports whether an admin may move an enrollment from one
// status to another. Pending records get approved or rejected; decided
// records can only be pulled back to pending. Re-applying the current
// status is allowed so repeated actions stay idempotent.
func ValidTransition(from, to string) bool {
	if from == to {
		return from == StatusPending || from == StatusApproved || from == StatusRejected
	}
	switch from {
	case StatusPending:
		return to == StatusApproved || to == StatusRejected
	case StatusApproved, StatusRejected:
		return to == StatusPending
	}
	return false
}
