package controllers

import (
	"github.com/gofiber/fiber/v2"

	"clinigoal/middleware"
	"clinigoal/models"
	"clinigoal/validators"
)

// UploadVideo forwards a multipart video upload to the backend.
func UploadVideo(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContent").(*validators.ContentMeta)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	fileHeader, err := c.FormFile("video")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A video file is required!", nil)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Could not read the uploaded file!", nil)
	}
	defer file.Close()

	video, err := api.UploadVideo(reqData.Title, reqData.CourseName, fileHeader.Filename, file)
	if err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video uploaded successfully!", video)
}

// UpdateVideo edits a video's title or course name.
func UpdateVideo(c *fiber.Ctx) error {
	id := c.Locals("entityID").(string)
	reqData, ok := c.Locals("validatedContent").(*validators.ContentMeta)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	if err := api.UpdateVideo(id, reqData.Title, reqData.CourseName); err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video updated successfully!", nil)
}

// DeleteVideo removes a video.
func DeleteVideo(c *fiber.Ctx) error {
	id := c.Locals("entityID").(string)
	if err := api.DeleteVideo(id); err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video deleted successfully!", nil)
}

// ListVideos returns every uploaded video.
func ListVideos(c *fiber.Ctx) error {
	videos, err := api.ListVideos()
	if err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos fetched successfully!", videos)
}

// UploadNote forwards a multipart document upload to the backend.
func UploadNote(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContent").(*validators.ContentMeta)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	fileHeader, err := c.FormFile("note")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A document file is required!", nil)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Could not read the uploaded file!", nil)
	}
	defer file.Close()

	note, err := api.UploadNote(reqData.Title, reqData.CourseName, fileHeader.Filename, file)
	if err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Note uploaded successfully!", note)
}

// UpdateNote edits a note's title or course name.
func UpdateNote(c *fiber.Ctx) error {
	id := c.Locals("entityID").(string)
	reqData, ok := c.Locals("validatedContent").(*validators.ContentMeta)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	if err := api.UpdateNote(id, reqData.Title, reqData.CourseName); err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Note updated successfully!", nil)
}

// DeleteNote removes a note.
func DeleteNote(c *fiber.Ctx) error {
	id := c.Locals("entityID").(string)
	if err := api.DeleteNote(id); err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Note deleted successfully!", nil)
}

// ListNotes returns every uploaded note.
func ListNotes(c *fiber.Ctx) error {
	notes, err := api.ListNotes()
	if err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notes fetched successfully!", notes)
}

// ListQuizzes returns every quiz.
func ListQuizzes(c *fiber.Ctx) error {
	quizzes, err := api.ListQuizzes()
	if err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", quizzes)
}

// CreateQuiz adds a quiz.
func CreateQuiz(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuiz").(*models.Quiz)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	quiz, err := api.CreateQuiz(*reqData)
	if err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// UpdateQuiz edits a quiz.
func UpdateQuiz(c *fiber.Ctx) error {
	id := c.Locals("entityID").(string)
	reqData, ok := c.Locals("validatedQuiz").(*models.Quiz)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	if err := api.UpdateQuiz(id, *reqData); err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully!", nil)
}

// DeleteQuiz removes a quiz.
func DeleteQuiz(c *fiber.Ctx) error {
	id := c.Locals("entityID").(string)
	if err := api.DeleteQuiz(id); err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully!", nil)
}
