package progression

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"clinigoal/models"
)

var validate = validator.New()

func init() {
	// objectid matches the backend's 24-hex-char identifier format.
	validate.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return models.IsValidID(fl.Field().String())
	})
}

// ReviewInput is the review form. Both ids must already be in the
// backend's id format; a form that fails validation is rejected locally
// and no request is sent.
type ReviewInput struct {
	Rating int    `json:"rating" validate:"min=1,max=5"`
	Review string `json:"review"`
}

// ValidateReview returns field -> message for everything wrong with the
// form. An empty map means the submission may proceed.
func ValidateReview(userID, courseID string, input ReviewInput) map[string]string {
	fieldErrors := make(map[string]string)

	if err := validate.Var(input.Rating, "min=1,max=5"); err != nil {
		fieldErrors["rating"] = "Please select a rating"
	}
	if strings.TrimSpace(input.Review) == "" {
		fieldErrors["review"] = "Please write a review"
	}
	if err := validate.Var(userID, "required,objectid"); err != nil {
		fieldErrors["userId"] = "Invalid user ID. Cannot submit review."
	}
	if err := validate.Var(courseID, "required,objectid"); err != nil {
		fieldErrors["courseId"] = "Invalid course ID. Cannot submit review."
	}
	return fieldErrors
}

// SubmitReview validates and submits the learner's review for the active
// course. Validation failures come back as field errors with no network
// call issued.
func (c *Controller) SubmitReview(input ReviewInput) (models.Review, map[string]string, error) {
	user, _ := c.local.User()
	course, ok := c.ActiveCourse()
	if !ok {
		return models.Review{}, map[string]string{"courseId": "No active course selected."}, nil
	}

	if fieldErrors := ValidateReview(user.ID, course.ID, input); len(fieldErrors) > 0 {
		return models.Review{}, fieldErrors, nil
	}

	review := models.Review{
		UserID:      user.ID,
		UserName:    user.Name,
		CourseID:    course.ID,
		CourseTitle: course.Title,
		Rating:      input.Rating,
		Review:      strings.TrimSpace(input.Review),
	}
	created, err := c.api.CreateReview(review)
	if err != nil {
		c.mu.Lock()
		c.lastErr = err.Error()
		c.mu.Unlock()
		return models.Review{}, nil, err
	}
	return created, nil, nil
}
