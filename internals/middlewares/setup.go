package middlewares

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"academia_backend/internals/configs"
	"academia_backend/internals/middlewares/logger"
)

const requestTimeout = 5 * time.Second

// RequestContext assigns a request id, bounds the user context with a
// timeout that GORM queries inherit, and logs timing.
func RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)

		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
		defer cancel()
		c.SetUserContext(ctx)

		err := c.Next()
		log.Printf("[REQ] id=%s %s %s dur=%s", id, c.Method(), c.OriginalURL(), time.Since(start))
		return err
	}
}

// SetupMiddlewares mounts the global chain. Cookie encryption sits before any
// route so session cookies are decrypted on the way in.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(cfg.CORSAllowOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(EncryptCookieMiddleware(cfg.SessionSecret))
	app.Use(GlobalRateLimiter(cfg.RateLimitEnabled))
}
