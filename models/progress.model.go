package models

// Section names, as used for tabs, gating and completion tracking.
const (
	SectionDashboard   = "dashboard"
	SectionVideos      = "videos"
	SectionNotes       = "notes"
	SectionAssignments = "assignments"
	SectionQuiz        = "quiz"
	SectionCertificate = "certificate"
	SectionReviews     = "reviews"
)

// SectionProgress records which sections of a course a learner has
// completed. Flags only ever move false to true.
type SectionProgress struct {
	Videos      bool `json:"videos"`
	Notes       bool `json:"notes"`
	Assignments bool `json:"assignments"`
	Quiz        bool `json:"quiz"`
}

// AllComplete reports whether every section is done. The certificate is
// the only thing gated on this.
func (p SectionProgress) AllComplete() bool {
	return p.Videos && p.Notes && p.Assignments && p.Quiz
}

// Completed counts finished sections, for the locked-view checklist.
func (p SectionProgress) Completed() int {
	count := 0
	for _, done := range []bool{p.Videos, p.Notes, p.Assignments, p.Quiz} {
		if done {
			count++
		}
	}
	return count
}
