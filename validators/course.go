package validators

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"clinigoal/middleware"
	"clinigoal/models"
)

// CourseBody is the create/update course form.
type CourseBody struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Course validates the course form and stores it in Locals.
func Course() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// EntityID validates the :id route parameter against the backend id
// format and stores it in Locals.
func EntityID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !models.IsValidID(id) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"id": "Invalid identifier format!",
			})
		}
		c.Locals("entityID", id)
		return c.Next()
	}
}
