package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"clinigoal/middleware"
	"clinigoal/models"
	"clinigoal/progression"
)

// SubmitAssignment accepts the assignment file and marks the section
// complete. The file itself is acknowledged, not stored.
func SubmitAssignment(c *fiber.Ctx) error {
	if !progress.CanAccess(models.SectionAssignments) {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Section is locked.", lockedView(progression.LockedNotice))
	}

	fileName := ""
	var fileSize int64
	if fileHeader, err := c.FormFile("assignment"); err == nil {
		fileName = fileHeader.Filename
		fileSize = fileHeader.Size
	}

	submission, err := progression.SubmitAssignment(fileName, fileSize)
	if errors.Is(err, progression.ErrNoFileSelected) {
		return middleware.ValidationErrorResponse(c, map[string]string{"assignment": err.Error()})
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Submission failed!", nil)
	}

	sectionProgress, next, err := progress.MarkComplete(models.SectionAssignments)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment submitted successfully!", fiber.Map{
		"submission":  submission,
		"progress":    sectionProgress,
		"nextSection": next,
	})
}
