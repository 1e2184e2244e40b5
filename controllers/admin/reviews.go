package controllers

import (
	"github.com/gofiber/fiber/v2"

	"clinigoal/middleware"
)

// ListReviews serves reviews from the scheduler's cache, falling back to a
// direct fetch while the cache is cold.
func ListReviews(c *fiber.Ctx) error {
	cached, fresh := reviews.Reviews()
	if fresh {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", cached)
	}

	fetched, err := api.ListReviews()
	if err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	reviews.Set(fetched)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", fetched)
}

// DeleteReview removes a review and drops it from the cache by refetching.
func DeleteReview(c *fiber.Ctx) error {
	id := c.Locals("entityID").(string)
	if err := api.DeleteReview(id); err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	if fetched, err := api.ListReviews(); err == nil {
		reviews.Set(fetched)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted successfully!", nil)
}
