package validators

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"clinigoal/middleware"
)

// LoginBody is the login form.
type LoginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterBody is the registration form.
type RegisterBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login validates the login form.
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Email) == "" || !strings.Contains(reqData.Email, "@") {
			errors["email"] = "A valid email is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// Email validates a form carrying just an email, like forgot-password.
func Email() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if strings.TrimSpace(reqData.Email) == "" || !strings.Contains(reqData.Email, "@") {
			return middleware.ValidationErrorResponse(c, map[string]string{"email": "A valid email is required!"})
		}
		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// Register validates the registration form.
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if strings.TrimSpace(reqData.Email) == "" || !strings.Contains(reqData.Email, "@") {
			errors["email"] = "A valid email is required!"
		}
		if len(reqData.Password) < 6 {
			errors["password"] = "Password must be at least 6 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}
