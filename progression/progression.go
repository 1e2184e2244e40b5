package progression

import (
	"errors"
	"sync"

	"clinigoal/backend"
	"clinigoal/models"
	"clinigoal/store"
	"clinigoal/utils"
)

// LockedNotice is shown when a learner taps a gated section. Attempting a
// locked section is a no-op, never an error.
const LockedNotice = "Please complete payment and wait for admin approval to access this content."

// ErrAlreadyEnrolled rejects a second enroll attempt for the same course.
var ErrAlreadyEnrolled = errors.New("already enrolled or awaiting approval")

// ErrPaymentCancelled is returned when the learner backs out of the
// simulated payment confirmation.
var ErrPaymentCancelled = errors.New("payment cancelled")

// Content is a course's learning material, scoped by courseName matching
// the course title (the backend has no content foreign keys).
type Content struct {
	Videos  []models.Video `json:"videos"`
	Notes   []models.Note  `json:"notes"`
	Quizzes []models.Quiz  `json:"quizzes"`
}

// Controller tracks one learner's enrollment status per course and gates
// section access. States per (learner, course):
//
//	not_enrolled -> pending -> approved | rejected
//
// with admin back-edges approved/rejected -> pending. Only the approval
// status gates navigation; section ordering is a suggestion, and the
// certificate alone requires all four completion flags.
type Controller struct {
	api   *backend.Client
	local *store.Store

	mu            sync.Mutex
	courses       []models.Course
	enrollments   []models.Enrollment
	activeCourse  *models.Course
	activeSection string
	lastErr       string
}

// New builds a learner progression controller.
func New(api *backend.Client, local *store.Store) *Controller {
	return &Controller{api: api, local: local, activeSection: models.SectionDashboard}
}

// User returns the learner identity from the local store.
func (c *Controller) User() (models.User, bool) {
	return c.local.User()
}

// RefreshCourses re-fetches the course list. On failure the previous list
// is kept and the error recorded for a dismissible banner.
func (c *Controller) RefreshCourses() error {
	courses, err := c.api.ListCourses()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err.Error()
		return err
	}
	c.courses = courses
	c.lastErr = ""
	return nil
}

// RefreshEnrollments re-fetches the learner's enrollments. When one is
// approved its course becomes the active course and the videos section is
// suggested, matching the dashboard's continue-learning behavior.
func (c *Controller) RefreshEnrollments() error {
	user, ok := c.local.User()
	if !ok {
		return errors.New("no learner session")
	}

	enrollments, err := c.api.ListUserEnrollments(user.ID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err.Error()
		return err
	}
	c.enrollments = enrollments
	c.lastErr = ""

	for _, enrollment := range enrollments {
		if enrollment.Status != models.StatusApproved {
			continue
		}
		for i := range c.courses {
			if c.courses[i].ID == enrollment.CourseID {
				c.activeCourse = &c.courses[i]
				if c.activeSection == models.SectionDashboard {
					c.activeSection = models.SectionVideos
				}
				break
			}
		}
	}
	return nil
}

// Courses returns the last fetched course list.
func (c *Controller) Courses() []models.Course {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.courses
}

// ActiveCourse returns the course the learner is currently working through.
func (c *Controller) ActiveCourse() (models.Course, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.activeCourse == nil {
		return models.Course{}, false
	}
	return *c.activeCourse, true
}

// SetActiveCourse selects the course for section views (the
// continue-learning action).
func (c *Controller) SetActiveCourse(courseID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.courses {
		if c.courses[i].ID == courseID {
			c.activeCourse = &c.courses[i]
			return true
		}
	}
	return false
}

// Status returns the learner's enrollment status for a course;
// not_enrolled when no record exists.
func (c *Controller) Status(courseID string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statusLocked(courseID)
}

func (c *Controller) statusLocked(courseID string) string {
	for _, enrollment := range c.enrollments {
		if enrollment.CourseID == courseID {
			return enrollment.Status
		}
	}
	return models.StatusNotEnrolled
}

// CanAccess is the section gate: the dashboard is always reachable, every
// other section requires the active course to be approved.
func (c *Controller) CanAccess(section string) bool {
	if section == models.SectionDashboard {
		return true
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.activeCourse == nil {
		return false
	}
	return c.statusLocked(c.activeCourse.ID) == models.StatusApproved
}

// OpenSection navigates to a section. A locked section leaves the current
// section unchanged and returns the user-facing notice.
func (c *Controller) OpenSection(section string) (string, bool) {
	if !c.CanAccess(section) {
		return LockedNotice, false
	}
	c.mu.Lock()
	c.activeSection = section
	c.mu.Unlock()
	return "", true
}

// ActiveSection returns the currently open section tab.
func (c *Controller) ActiveSection() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeSection
}

// Enroll runs the enroll action for a course: only valid from
// not_enrolled, simulated payment confirmation in place of a gateway, then
// an enrollment POST with a generated payment id and status pending,
// followed by a re-fetch.
func (c *Controller) Enroll(courseID string, paymentConfirmed bool) error {
	user, ok := c.local.User()
	if !ok || !models.IsValidID(user.ID) {
		return errors.New("learner id is missing; log in again before enrolling")
	}

	c.mu.Lock()
	var course *models.Course
	for i := range c.courses {
		if c.courses[i].ID == courseID {
			course = &c.courses[i]
			break
		}
	}
	if course == nil {
		c.mu.Unlock()
		return errors.New("course not found")
	}
	if c.statusLocked(courseID) != models.StatusNotEnrolled {
		c.mu.Unlock()
		return ErrAlreadyEnrolled
	}
	title := course.Title
	c.mu.Unlock()

	if !paymentConfirmed {
		return ErrPaymentCancelled
	}

	enrollment := models.Enrollment{
		UserID:      user.ID,
		CourseID:    courseID,
		UserName:    user.Name,
		CourseTitle: title,
		PaymentID:   utils.GeneratePaymentID(),
		Status:      models.StatusPending,
	}
	if err := c.api.CreateEnrollment(enrollment); err != nil {
		c.mu.Lock()
		c.lastErr = err.Error()
		c.mu.Unlock()
		return err
	}
	return c.RefreshEnrollments()
}

// Content fetches videos, notes and quizzes and keeps only those whose
// courseName matches the active course title.
func (c *Controller) Content() (Content, error) {
	course, ok := c.ActiveCourse()
	if !ok {
		return Content{}, errors.New("no active course")
	}

	videos, err := c.api.ListVideos()
	if err != nil {
		return Content{}, err
	}
	notes, err := c.api.ListNotes()
	if err != nil {
		return Content{}, err
	}
	quizzes, err := c.api.ListQuizzes()
	if err != nil {
		return Content{}, err
	}

	content := Content{Videos: []models.Video{}, Notes: []models.Note{}, Quizzes: []models.Quiz{}}
	for _, video := range videos {
		if video.CourseName == course.Title {
			content.Videos = append(content.Videos, video)
		}
	}
	for _, note := range notes {
		if note.CourseName == course.Title {
			content.Notes = append(content.Notes, note)
		}
	}
	for _, quiz := range quizzes {
		if quiz.CourseName == course.Title {
			content.Quizzes = append(content.Quizzes, quiz)
		}
	}
	return content, nil
}

// Progress returns the completion record for the active course.
func (c *Controller) Progress() models.SectionProgress {
	course, ok := c.ActiveCourse()
	if !ok {
		return models.SectionProgress{}
	}
	return c.local.Progress(course.ID)
}

// MarkComplete sets a section's completion flag and returns the suggested
// next tab. The suggestion is soft: nothing stops a learner jumping
// straight to the quiz once approved.
func (c *Controller) MarkComplete(section string) (models.SectionProgress, string, error) {
	course, ok := c.ActiveCourse()
	if !ok {
		return models.SectionProgress{}, "", errors.New("no active course")
	}
	progress, err := c.local.MarkSectionComplete(course.ID, section)
	if err != nil {
		return progress, "", err
	}
	return progress, NextSection(section), nil
}

// NextSection is the suggested tab after completing a section.
func NextSection(section string) string {
	switch section {
	case models.SectionVideos:
		return models.SectionNotes
	case models.SectionNotes:
		return models.SectionAssignments
	case models.SectionAssignments:
		return models.SectionQuiz
	case models.SectionQuiz:
		return models.SectionCertificate
	}
	return models.SectionDashboard
}

// LastError returns the dismissible error banner text, if any.
func (c *Controller) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// DismissError clears the banner.
func (c *Controller) DismissError() {
	c.mu.Lock()
	c.lastErr = ""
	c.mu.Unlock()
}
