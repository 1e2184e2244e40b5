package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"clinigoal/middleware"
	"clinigoal/models"
	"clinigoal/progression"
)

// actionLabel is the dashboard card button text per enrollment status.
func actionLabel(status string) string {
	switch status {
	case models.StatusPending:
		return "Pending Approval"
	case models.StatusApproved:
		return "Continue Learning"
	case models.StatusRejected:
		return "Enrollment Rejected"
	}
	return "Enroll Now"
}

// Dashboard re-fetches courses and the learner's enrollments and renders
// the course cards. Fetch failures keep the previous lists and surface a
// dismissible error alongside them.
func Dashboard(c *fiber.Ctx) error {
	// Both refreshes record their own error; stale data plus a banner
	// beats an empty page.
	_ = progress.RefreshCourses()
	_ = progress.RefreshEnrollments()

	courses := progress.Courses()
	cards := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		status := progress.Status(course.ID)
		cards = append(cards, fiber.Map{
			"course": course,
			"status": status,
			"action": actionLabel(status),
		})
	}

	response := fiber.Map{
		"courses": cards,
		"section": progress.ActiveSection(),
		"error":   progress.LastError(),
	}
	if course, ok := progress.ActiveCourse(); ok {
		response["activeCourse"] = course
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", response)
}

// EnrollBody is the enroll action form. PaymentConfirmed stands in for the
// payment gateway confirmation step.
type EnrollBody struct {
	CourseID         string `json:"courseId"`
	PaymentConfirmed bool   `json:"paymentConfirmed"`
}

// Enroll runs the enroll flow for a course.
func Enroll(c *fiber.Ctx) error {
	reqData := new(EnrollBody)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if !models.IsValidID(reqData.CourseID) {
		return middleware.ValidationErrorResponse(c, map[string]string{"courseId": "Invalid course identifier!"})
	}

	err := progress.Enroll(reqData.CourseID, reqData.PaymentConfirmed)
	switch {
	case errors.Is(err, progression.ErrPaymentCancelled):
		return middleware.JsonResponse(c, fiber.StatusOK, false, "Payment cancelled.", nil)
	case errors.Is(err, progression.ErrAlreadyEnrolled):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already enrolled in this course!", nil)
	case err != nil:
		return middleware.BackendErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrollment submitted! Waiting for admin approval.", fiber.Map{
		"status": progress.Status(reqData.CourseID),
	})
}

// SelectCourse makes a course the active one for section navigation.
func SelectCourse(c *fiber.Ctx) error {
	id := c.Locals("entityID").(string)
	if !progress.SetActiveCourse(id) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course selected!", nil)
}

// DismissDashboardError clears the error banner.
func DismissDashboardError(c *fiber.Ctx) error {
	progress.DismissError()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Error dismissed!", nil)
}
