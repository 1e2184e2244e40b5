package middleware

import "github.com/gofiber/fiber/v2"

// JsonResponse is the uniform response envelope for the dashboard surface.
func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ValidationErrorResponse renders field-level validation errors. These are
// caught before any backend request is sent.
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// BackendErrorResponse maps an upstream failure to the envelope. The
// dashboard never crashes on a backend error; the worst case is this
// dismissible payload.
func BackendErrorResponse(c *fiber.Ctx, err error) error {
	return JsonResponse(c, fiber.StatusBadGateway, false, err.Error(), nil)
}
