package validators

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"clinigoal/middleware"
)

// ContentMeta is the shared video/note upload and edit form.
type ContentMeta struct {
	Title      string `json:"title" form:"title"`
	CourseName string `json:"courseName" form:"courseName"`
}

// Content validates the upload/edit metadata and stores it in Locals. The
// file part, when present, is read by the controller.
func Content() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ContentMeta)
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

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContent", reqData)
		return c.Next()
	}
}
