// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"academia_backend/internals/sessions"
)

const msgUnauthenticated = "Usuário não autenticado."

// SessionAuth requires an authenticated session. It exposes the session user
// through Locals("user_id") (uint) and Locals("userRole"), and re-saves the
// session so the cookie expiry slides forward on every authenticated request.
func SessionAuth(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			log.Printf("[ERROR] SessionAuth: load session: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao carregar sessão.")
		}

		userID, ok := sessions.UserID(sess)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, msgUnauthenticated)
		}
		role := sessions.Role(sess)

		if err := sess.Save(); err != nil {
			log.Printf("[WARN] SessionAuth: refresh session %d: %v", userID, err)
		}

		c.Locals("user_id", userID)
		c.Locals("userRole", role)
		return c.Next()
	}
}

// UserIDFromLocals reads the id placed by SessionAuth.
func UserIDFromLocals(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals("user_id").(uint)
	if !ok || id == 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, msgUnauthenticated)
	}
	return id, nil
}
