package progression

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinigoal/backend"
	"clinigoal/models"
	"clinigoal/store"
)

const (
	testUserID   = "68a0000000000000000000aa"
	testCourseID = "68a0000000000000000000bb"
)

// fakeBackend serves the REST surface the controller touches and records
// what it receives.
type fakeBackend struct {
	mu          sync.Mutex
	courses     []models.Course
	enrollments []models.Enrollment
	videos      []models.Video
	notes       []models.Note
	quizzes     []models.Quiz
	created     []models.Enrollment
	hits        []string
}

func (f *fakeBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.hits = append(f.hits, r.Method+" "+r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/api/courses":
			json.NewEncoder(w).Encode(f.courses)
		case strings.HasPrefix(r.URL.Path, "/api/enrollments/user/"):
			json.NewEncoder(w).Encode(f.enrollments)
		case r.URL.Path == "/api/enrollments" && r.Method == http.MethodPost:
			var enrollment models.Enrollment
			json.NewDecoder(r.Body).Decode(&enrollment)
			enrollment.ID = "68a0000000000000000000cc"
			f.created = append(f.created, enrollment)
			f.enrollments = append(f.enrollments, enrollment)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
		case r.URL.Path == "/api/videos":
			json.NewEncoder(w).Encode(f.videos)
		case r.URL.Path == "/api/notes":
			json.NewEncoder(w).Encode(f.notes)
		case r.URL.Path == "/api/quizzes":
			json.NewEncoder(w).Encode(f.quizzes)
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"not found"}`))
		}
	}
}

func newTestController(t *testing.T, fake *fakeBackend) *Controller {
	t.Helper()
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	local, err := store.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	require.NoError(t, local.SetUser(models.User{ID: testUserID, Name: "Jane Learner"}))

	api := backend.New(server.URL, 5*time.Second, nil)
	return New(api, local)
}

func seededBackend(status string) *fakeBackend {
	fake := &fakeBackend{
		courses: []models.Course{{ID: testCourseID, Title: "Clinical Research Basics"}},
	}
	if status != models.StatusNotEnrolled {
		fake.enrollments = []models.Enrollment{{
			ID:       "68a0000000000000000000dd",
			UserID:   testUserID,
			CourseID: testCourseID,
			Status:   status,
		}}
	}
	return fake
}

func TestGateDashboardAlwaysAccessible(t *testing.T) {
	for _, status := range []string{models.StatusNotEnrolled, models.StatusPending, models.StatusApproved, models.StatusRejected} {
		c := newTestController(t, seededBackend(status))
		require.NoError(t, c.RefreshCourses())
		require.NoError(t, c.RefreshEnrollments())
		c.SetActiveCourse(testCourseID)

		assert.True(t, c.CanAccess(models.SectionDashboard), "status %s", status)
	}
}

func TestGateSectionsRequireApproval(t *testing.T) {
	sections := []string{
		models.SectionVideos, models.SectionNotes, models.SectionAssignments,
		models.SectionQuiz, models.SectionCertificate, models.SectionReviews,
	}

	for _, status := range []string{models.StatusNotEnrolled, models.StatusPending, models.StatusRejected} {
		c := newTestController(t, seededBackend(status))
		require.NoError(t, c.RefreshCourses())
		require.NoError(t, c.RefreshEnrollments())
		c.SetActiveCourse(testCourseID)

		for _, section := range sections {
			assert.False(t, c.CanAccess(section), "status %s section %s", status, section)
			notice, ok := c.OpenSection(section)
			assert.False(t, ok)
			assert.Equal(t, LockedNotice, notice)
		}
	}

	c := newTestController(t, seededBackend(models.StatusApproved))
	require.NoError(t, c.RefreshCourses())
	require.NoError(t, c.RefreshEnrollments())
	for _, section := range sections {
		assert.True(t, c.CanAccess(section), "approved section %s", section)
	}
}

func TestApprovedEnrollmentBecomesActiveCourse(t *testing.T) {
	c := newTestController(t, seededBackend(models.StatusApproved))
	require.NoError(t, c.RefreshCourses())
	require.NoError(t, c.RefreshEnrollments())

	course, ok := c.ActiveCourse()
	require.True(t, ok)
	assert.Equal(t, testCourseID, course.ID)
	assert.Equal(t, models.SectionVideos, c.ActiveSection())
}

func TestEnrollCancelledPaymentSendsNothing(t *testing.T) {
	fake := seededBackend(models.StatusNotEnrolled)
	c := newTestController(t, fake)
	require.NoError(t, c.RefreshCourses())
	require.NoError(t, c.RefreshEnrollments())

	err := c.Enroll(testCourseID, false)
	assert.ErrorIs(t, err, ErrPaymentCancelled)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Empty(t, fake.created)
}

func TestEnrollPostsPendingWithGeneratedPaymentID(t *testing.T) {
	fake := seededBackend(models.StatusNotEnrolled)
	c := newTestController(t, fake)
	require.NoError(t, c.RefreshCourses())
	require.NoError(t, c.RefreshEnrollments())

	require.NoError(t, c.Enroll(testCourseID, true))

	fake.mu.Lock()
	created := fake.created
	fake.mu.Unlock()
	require.Len(t, created, 1)
	assert.Equal(t, models.StatusPending, created[0].Status)
	assert.Equal(t, testUserID, created[0].UserID)
	assert.Equal(t, "Clinical Research Basics", created[0].CourseTitle)
	assert.True(t, strings.HasPrefix(created[0].PaymentID, "pay_dummy_"))
	assert.Len(t, created[0].PaymentID, len("pay_dummy_")+6)

	// The post-enroll re-fetch now reports pending.
	assert.Equal(t, models.StatusPending, c.Status(testCourseID))
}

func TestEnrollTwiceRejected(t *testing.T) {
	c := newTestController(t, seededBackend(models.StatusPending))
	require.NoError(t, c.RefreshCourses())
	require.NoError(t, c.RefreshEnrollments())

	err := c.Enroll(testCourseID, true)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
}

func TestContentFilteredByCourseName(t *testing.T) {
	fake := seededBackend(models.StatusApproved)
	fake.videos = []models.Video{
		{ID: "v1", Title: "Intro", CourseName: "Clinical Research Basics"},
		{ID: "v2", Title: "Other", CourseName: "Pharmacology"},
	}
	fake.notes = []models.Note{
		{ID: "n1", Title: "Week 1", CourseName: "Clinical Research Basics"},
	}
	fake.quizzes = []models.Quiz{
		{ID: "q1", Title: "Final", CourseName: "Pharmacology"},
	}

	c := newTestController(t, fake)
	require.NoError(t, c.RefreshCourses())
	require.NoError(t, c.RefreshEnrollments())

	content, err := c.Content()
	require.NoError(t, err)
	require.Len(t, content.Videos, 1)
	assert.Equal(t, "v1", content.Videos[0].ID)
	assert.Len(t, content.Notes, 1)
	assert.Empty(t, content.Quizzes)
}

func TestMarkCompleteSuggestsNextSection(t *testing.T) {
	c := newTestController(t, seededBackend(models.StatusApproved))
	require.NoError(t, c.RefreshCourses())
	require.NoError(t, c.RefreshEnrollments())

	progress, next, err := c.MarkComplete(models.SectionVideos)
	require.NoError(t, err)
	assert.True(t, progress.Videos)
	assert.Equal(t, models.SectionNotes, next)

	progress, next, err = c.MarkComplete(models.SectionQuiz)
	require.NoError(t, err)
	assert.True(t, progress.Quiz)
	assert.True(t, progress.Videos, "flags never reset")
	assert.Equal(t, models.SectionCertificate, next)
}

func TestEnrollApproveUnlockFlow(t *testing.T) {
	fake := seededBackend(models.StatusNotEnrolled)
	c := newTestController(t, fake)
	require.NoError(t, c.RefreshCourses())
	require.NoError(t, c.RefreshEnrollments())

	// Enroll lands pending; sections stay locked.
	require.NoError(t, c.Enroll(testCourseID, true))
	assert.Equal(t, models.StatusPending, c.Status(testCourseID))
	c.SetActiveCourse(testCourseID)
	assert.False(t, c.CanAccess(models.SectionVideos))

	// Admin approval happens on the backend; the next refresh unlocks.
	fake.mu.Lock()
	for i := range fake.enrollments {
		fake.enrollments[i].Status = models.StatusApproved
	}
	fake.mu.Unlock()

	require.NoError(t, c.RefreshEnrollments())
	assert.Equal(t, models.StatusApproved, c.Status(testCourseID))
	assert.True(t, c.CanAccess(models.SectionVideos))
	_, ok := c.OpenSection(models.SectionQuiz)
	assert.True(t, ok)
}

func TestRefreshFailureKeepsPreviousCourses(t *testing.T) {
	fake := seededBackend(models.StatusNotEnrolled)
	server := httptest.NewServer(fake.handler())

	local, err := store.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	require.NoError(t, local.SetUser(models.User{ID: testUserID, Name: "Jane Learner"}))

	c := New(backend.New(server.URL, 2*time.Second, nil), local)
	require.NoError(t, c.RefreshCourses())
	require.Len(t, c.Courses(), 1)

	server.Close()
	require.Error(t, c.RefreshCourses())

	assert.Len(t, c.Courses(), 1)
	assert.NotEmpty(t, c.LastError())

	c.DismissError()
	assert.Empty(t, c.LastError())
}
