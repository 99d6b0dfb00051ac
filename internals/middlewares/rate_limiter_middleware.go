package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func passthrough(c *fiber.Ctx) error { return c.Next() }

func newLimiter(enabled bool, max int, window time.Duration, message string) fiber.Handler {
	if !enabled {
		return passthrough
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": message,
			})
		},
	})
}

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter(enabled bool) fiber.Handler {
	return newLimiter(enabled, 100, 1*time.Minute,
		"❌ Muitas requisições. Tente novamente mais tarde.")
}

// Rate limiter untuk login route (lebih ketat)
func LoginRateLimiter(enabled bool) fiber.Handler {
	return newLimiter(enabled, 5, 1*time.Minute,
		"❌ Muitas tentativas de login. Tente novamente em instantes.")
}

// Rate limiter untuk register route
func RegisterRateLimiter(enabled bool) fiber.Handler {
	return newLimiter(enabled, 3, 5*time.Minute,
		"❌ Muitas tentativas de cadastro. Aguarde alguns minutos.")
}
