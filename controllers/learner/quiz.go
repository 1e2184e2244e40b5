package controllers

import (
	"github.com/gofiber/fiber/v2"

	"clinigoal/middleware"
	"clinigoal/models"
	"clinigoal/progression"
)

// StartQuiz begins a fresh attempt at one of the active course's quizzes.
// Restarting discards any earlier attempt for the same quiz.
func StartQuiz(c *fiber.Ctx) error {
	if !progress.CanAccess(models.SectionQuiz) {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Section is locked.", lockedView(progression.LockedNotice))
	}

	id := c.Locals("entityID").(string)
	content, err := progress.Content()
	if err != nil {
		return middleware.BackendErrorResponse(c, err)
	}

	var quiz *models.Quiz
	for i := range content.Quizzes {
		if content.Quizzes[i].ID == id {
			quiz = &content.Quizzes[i]
			break
		}
	}
	if quiz == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found for this course!", nil)
	}

	sessionMu.Lock()
	quizSessions[id] = progression.StartQuiz(*quiz)
	sessionMu.Unlock()

	// Questions go out without their correct answers.
	questions := make([]fiber.Map, 0, len(quiz.Questions))
	for _, question := range quiz.Questions {
		questions = append(questions, fiber.Map{
			"question": question.Question,
			"options":  question.Options,
		})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz started!", fiber.Map{
		"quizId":    quiz.ID,
		"title":     quiz.Title,
		"questions": questions,
	})
}

// AnswerBody selects an option for one question of a running attempt.
type AnswerBody struct {
	QuestionIndex int    `json:"questionIndex"`
	Answer        string `json:"answer"`
}

// AnswerQuiz records an option choice. Re-answering a question overwrites
// the earlier choice.
func AnswerQuiz(c *fiber.Ctx) error {
	id := c.Locals("entityID").(string)
	reqData := new(AnswerBody)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	sessionMu.Lock()
	session, ok := quizSessions[id]
	sessionMu.Unlock()
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No quiz attempt in progress!", nil)
	}

	if err := session.SelectAnswer(reqData.QuestionIndex, reqData.Answer); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer recorded!", nil)
}

// SubmitQuiz grades the attempt and marks the quiz section complete. The
// section completes regardless of the score; the pass flag is informative.
func SubmitQuiz(c *fiber.Ctx) error {
	id := c.Locals("entityID").(string)

	sessionMu.Lock()
	session, ok := quizSessions[id]
	if ok {
		delete(quizSessions, id)
	}
	sessionMu.Unlock()
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No quiz attempt in progress!", nil)
	}

	result := session.Submit(passingPct)

	sectionProgress, next, err := progress.MarkComplete(models.SectionQuiz)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", fiber.Map{
		"result":      result,
		"progress":    sectionProgress,
		"nextSection": next,
	})
}
