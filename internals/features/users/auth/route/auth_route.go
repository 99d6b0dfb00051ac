// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"academia_backend/internals/configs"
	controller "academia_backend/internals/features/users/auth/controller"
	rateLimiter "academia_backend/internals/middlewares"
)

func AuthRoutes(router fiber.Router, db *gorm.DB, store *session.Store, cfg *configs.Config) {
	authController := controller.NewAuthController(db, store, cfg.BcryptCost)

	// 🔓 Public
	router.Post("/login", rateLimiter.LoginRateLimiter(cfg.RateLimitEnabled), authController.Login)
	router.Post("/register", rateLimiter.RegisterRateLimiter(cfg.RateLimitEnabled), authController.Register)
	router.Post("/logout", authController.Logout)
}
