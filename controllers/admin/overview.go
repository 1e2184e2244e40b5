package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"

	"clinigoal/middleware"
	"clinigoal/models"
)

// Overview serves the admin landing numbers: backend counters, backend
// health, and how many enrollments arrived since midnight.
func Overview(c *fiber.Ctx) error {
	stats, err := api.Stats()
	if err != nil {
		return middleware.BackendErrorResponse(c, err)
	}

	healthy, checkedAt, message := health.Status()

	rows, _ := approvals.Snapshot()
	enrolledToday := 0
	dayStart := now.BeginningOfDay()
	for _, row := range rows {
		created, parseErr := time.Parse(time.RFC3339, row.CreatedAt)
		if parseErr != nil {
			continue
		}
		if !created.Before(dayStart) {
			enrolledToday++
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Overview fetched successfully!", fiber.Map{
		"stats":         stats,
		"enrolledToday": enrolledToday,
		"backend": fiber.Map{
			"healthy":   healthy,
			"checkedAt": checkedAt,
			"message":   message,
		},
	})
}

// Analytics proxies the raw analytics payload.
func Analytics(c *fiber.Ctx) error {
	analytics, err := api.Analytics()
	if err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	if analytics == nil {
		analytics = models.Analytics{}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched successfully!", analytics)
}
