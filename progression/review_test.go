package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinigoal/models"
)

func TestValidateReviewCollectsFieldErrors(t *testing.T) {
	fieldErrors := ValidateReview("not-an-id", "", ReviewInput{Rating: 0, Review: "  "})

	assert.Equal(t, "Please select a rating", fieldErrors["rating"])
	assert.Equal(t, "Please write a review", fieldErrors["review"])
	assert.Contains(t, fieldErrors["userId"], "Invalid user ID")
	assert.Contains(t, fieldErrors["courseId"], "Invalid course ID")
}

func TestValidateReviewAcceptsValidInput(t *testing.T) {
	fieldErrors := ValidateReview(testUserID, testCourseID, ReviewInput{Rating: 4, Review: "Great course"})
	assert.Empty(t, fieldErrors)
}

func TestValidateReviewRatingBounds(t *testing.T) {
	for _, rating := range []int{-1, 0, 6} {
		fieldErrors := ValidateReview(testUserID, testCourseID, ReviewInput{Rating: rating, Review: "ok"})
		assert.Contains(t, fieldErrors, "rating", "rating %d", rating)
	}
	for _, rating := range []int{1, 5} {
		fieldErrors := ValidateReview(testUserID, testCourseID, ReviewInput{Rating: rating, Review: "ok"})
		assert.NotContains(t, fieldErrors, "rating", "rating %d", rating)
	}
}

func TestSubmitReviewInvalidFormSendsNothing(t *testing.T) {
	fake := seededBackend(models.StatusApproved)
	c := newTestController(t, fake)
	require.NoError(t, c.RefreshCourses())
	require.NoError(t, c.RefreshEnrollments())

	_, fieldErrors, err := c.SubmitReview(ReviewInput{Rating: 0, Review: ""})
	require.NoError(t, err)
	assert.NotEmpty(t, fieldErrors)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	for _, hit := range fake.hits {
		assert.NotContains(t, hit, "/api/reviews")
	}
}

func TestSubmitReviewWithoutActiveCourse(t *testing.T) {
	c := newTestController(t, seededBackend(models.StatusNotEnrolled))
	require.NoError(t, c.RefreshCourses())

	_, fieldErrors, err := c.SubmitReview(ReviewInput{Rating: 5, Review: "Great"})
	require.NoError(t, err)
	assert.Contains(t, fieldErrors, "courseId")
}
