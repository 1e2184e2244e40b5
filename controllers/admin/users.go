package controllers

import (
	"github.com/gofiber/fiber/v2"

	"clinigoal/middleware"
)

// ListUsers returns the registered learners.
func ListUsers(c *fiber.Ctx) error {
	users, err := api.ListUsers()
	if err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// UserEnrollments returns one learner's enrollment records, for the user
// tracking drill-down.
func UserEnrollments(c *fiber.Ctx) error {
	id := c.Locals("entityID").(string)
	enrollments, err := api.ListUserEnrollments(id)
	if err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

// DeleteUser removes a learner account.
func DeleteUser(c *fiber.Ctx) error {
	id := c.Locals("entityID").(string)
	if err := api.DeleteUser(id); err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
}
