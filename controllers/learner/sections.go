package controllers

import (
	"github.com/gofiber/fiber/v2"

	"clinigoal/middleware"
	"clinigoal/models"
	"clinigoal/progression"
)

// validSections are the tabs a learner can open.
var validSections = map[string]bool{
	models.SectionDashboard:   true,
	models.SectionVideos:      true,
	models.SectionNotes:       true,
	models.SectionAssignments: true,
	models.SectionQuiz:        true,
	models.SectionCertificate: true,
	models.SectionReviews:     true,
}

// OpenSection navigates to a section tab. A gated section returns the
// locked view: the notice plus the completion checklist, with HTTP 200
// because a locked tab is a state, not a failure.
func OpenSection(c *fiber.Ctx) error {
	section := c.Params("section")
	if !validSections[section] {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Unknown section!", nil)
	}

	notice, ok := progress.OpenSection(section)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Section is locked.", lockedView(notice))
	}

	response := fiber.Map{
		"section":  section,
		"progress": progress.Progress(),
	}
	if section == models.SectionVideos || section == models.SectionNotes || section == models.SectionQuiz {
		content, err := progress.Content()
		if err != nil {
			return middleware.BackendErrorResponse(c, err)
		}
		switch section {
		case models.SectionVideos:
			response["videos"] = content.Videos
		case models.SectionNotes:
			response["notes"] = content.Notes
		case models.SectionQuiz:
			response["quizzes"] = content.Quizzes
		}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section opened!", response)
}

// lockedView is what a gated section shows: the notice and how far along
// the learner is.
func lockedView(notice string) fiber.Map {
	sectionProgress := progress.Progress()
	return fiber.Map{
		"locked":    true,
		"notice":    notice,
		"progress":  sectionProgress,
		"completed": sectionProgress.Completed(),
		"total":     4,
	}
}

// MarkComplete flags a section done and returns the suggested next tab.
// The suggestion is soft; nothing blocks opening sections out of order.
func MarkComplete(c *fiber.Ctx) error {
	section := c.Params("section")
	switch section {
	case models.SectionVideos, models.SectionNotes, models.SectionAssignments, models.SectionQuiz:
	default:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This section has no completion flag!", nil)
	}
	if !progress.CanAccess(section) {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Section is locked.", lockedView(progression.LockedNotice))
	}

	sectionProgress, next, err := progress.MarkComplete(section)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section marked complete!", fiber.Map{
		"progress":    sectionProgress,
		"nextSection": next,
	})
}
