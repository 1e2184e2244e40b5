package validators

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"clinigoal/middleware"
	"clinigoal/models"
)

// Quiz validates a quiz create/update form: a title, a course name, and at
// least one question where every question has four options and a
// correctAnswer that is one of them.
func Quiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Quiz)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.CourseName) == "" {
			errors["courseName"] = "Course name is required!"
		}
		if len(reqData.Questions) == 0 {
			errors["questions"] = "At least one question is required!"
		}
		for _, question := range reqData.Questions {
			if strings.TrimSpace(question.Question) == "" {
				errors["questions"] = "Every question needs text!"
				break
			}
			if len(question.Options) != 4 {
				errors["questions"] = "Every question needs exactly 4 options!"
				break
			}
			matched := false
			for _, option := range question.Options {
				if option == question.CorrectAnswer {
					matched = true
					break
				}
			}
			if !matched {
				errors["questions"] = "The correct answer must be one of the options!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}
