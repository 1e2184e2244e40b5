package controllers

import (
	"github.com/gofiber/fiber/v2"

	"clinigoal/middleware"
)

// ListApprovals returns the enrollment table as the monitor last saw it,
// with per-row "new" flags and offered actions, plus any undismissed
// polling error.
func ListApprovals(c *fiber.Ctx) error {
	rows, lastErr := approvals.Snapshot()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": rows,
		"error":       lastErr,
	})
}

// RefreshApprovals forces a fetch outside the poll schedule.
func RefreshApprovals(c *fiber.Ctx) error {
	if err := approvals.Refresh(); err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return ListApprovals(c)
}

// ApproveEnrollment moves a pending enrollment to approved.
func ApproveEnrollment(c *fiber.Ctx) error {
	id := c.Locals("entityID").(string)
	if err := approvals.Approve(id); err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment approved successfully!", nil)
}

// RejectEnrollment moves a pending enrollment to rejected.
func RejectEnrollment(c *fiber.Ctx) error {
	id := c.Locals("entityID").(string)
	if err := approvals.Reject(id); err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment rejected successfully!", nil)
}

// RevokeEnrollment pulls a decided enrollment back to pending.
func RevokeEnrollment(c *fiber.Ctx) error {
	id := c.Locals("entityID").(string)
	if err := approvals.Revoke(id); err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment moved back to pending!", nil)
}

// DismissApprovalError clears the polling error banner.
func DismissApprovalError(c *fiber.Ctx) error {
	approvals.DismissError()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Error dismissed!", nil)
}
