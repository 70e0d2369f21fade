package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lumina-store/lumina/internal/auth"
)

const userLocalsKey = "current_user"

// RequireSession validates the bearer token against the session store on
// every request and stores the resolved profile in locals. Validity is never
// cached, so revocation and expiry take effect immediately.
func RequireSession(svc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := svc.VerifySession(c.UserContext(), auth.TokenFromRequest(c))
		if err != nil {
			return err
		}
		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// RequireAdmin gates a route group behind the admin role.
func RequireAdmin(svc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := svc.AuthorizeAdmin(c.UserContext(), auth.TokenFromRequest(c))
		if err != nil {
			return err
		}
		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// UserFromCtx returns the profile stored by RequireSession or RequireAdmin.
func UserFromCtx(c *fiber.Ctx) (auth.PublicUser, bool) {
	user, ok := c.Locals(userLocalsKey).(auth.PublicUser)
	return user, ok
}
