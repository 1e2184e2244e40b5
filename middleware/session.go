package middleware

import (
	"github.com/gofiber/fiber/v2"

	"clinigoal/store"
)

// RequireSession guards learner routes: a valid stored user must exist.
// The bearer token itself is only checked for local expiry; the backend is
// the authority on whether it is still accepted.
func RequireSession(local *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := local.User()
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "No active session. Please log in.", nil)
		}
		if local.TokenExpired() {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Session expired. Please log in again.", nil)
		}
		c.Locals("user", user)
		return c.Next()
	}
}
