package controllers

import (
	"github.com/gofiber/fiber/v2"

	"clinigoal/middleware"
	"clinigoal/progression"
	"clinigoal/validators"
)

// Login exchanges credentials for a backend session and persists it
// locally. Subsequent backend calls carry the stored token.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*validators.LoginBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	auth, err := api.Login(reqData.Email, reqData.Password)
	if err != nil {
		return middleware.BackendErrorResponse(c, err)
	}

	if err := local.SetToken(auth.Token); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not persist the session!", nil)
	}
	if err := local.SetUser(auth.User); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not persist the session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", auth.User)
}

// Register creates an account and logs straight into it.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*validators.RegisterBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	auth, err := api.Register(reqData.Name, reqData.Email, reqData.Password)
	if err != nil {
		return middleware.BackendErrorResponse(c, err)
	}

	if err := local.SetToken(auth.Token); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not persist the session!", nil)
	}
	if err := local.SetUser(auth.User); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not persist the session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registered successfully!", auth.User)
}

// ForgotPassword relays a reset request to the backend.
func ForgotPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*validators.LoginBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	if err := api.ForgotPassword(reqData.Email); err != nil {
		return middleware.BackendErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset email sent!", nil)
}

// Logout clears the persisted session and any in-memory quiz attempts.
func Logout(c *fiber.Ctx) error {
	if err := local.ClearSession(); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not clear the session!", nil)
	}

	sessionMu.Lock()
	quizSessions = map[string]*progression.QuizSession{}
	certificates = map[string]certifiedArtifact{}
	sessionMu.Unlock()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully!", nil)
}
