package controllers

import (
	"github.com/gofiber/fiber/v2"

	"clinigoal/middleware"
	"clinigoal/progression"
)

// SubmitReview validates and submits a review for the active course. Field
// errors come back without any backend call having been made.
func SubmitReview(c *fiber.Ctx) error {
	reqData := new(progression.ReviewInput)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	review, fieldErrors, err := progress.SubmitReview(*reqData)
	if len(fieldErrors) > 0 {
		return middleware.ValidationErrorResponse(c, fieldErrors)
	}
	if err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully!", review)
}
