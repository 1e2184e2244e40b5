package controllers

import (
	"github.com/gofiber/fiber/v2"

	"clinigoal/middleware"
	"clinigoal/models"
	"clinigoal/validators"
)

// ListCourses returns the course catalogue.
func ListCourses(c *fiber.Ctx) error {
	courses, err := api.ListCourses()
	if err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// CreateCourse adds a course to the catalogue.
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*validators.CourseBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := api.CreateCourse(models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
	})
	if err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse edits a course.
func UpdateCourse(c *fiber.Ctx) error {
	id := c.Locals("entityID").(string)
	reqData, ok := c.Locals("validatedCourse").(*validators.CourseBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := api.UpdateCourse(id, models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
	})
	if err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes a course. Content uploaded under the course's title
// is not cascaded; the name link simply stops matching anything.
func DeleteCourse(c *fiber.Ctx) error {
	id := c.Locals("entityID").(string)
	if err := api.DeleteCourse(id); err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
