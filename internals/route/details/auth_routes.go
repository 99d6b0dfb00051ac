package details

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"academia_backend/internals/configs"
	authRoute "academia_backend/internals/features/users/auth/route"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, store *session.Store, cfg *configs.Config) {
	authRoute.AuthRoutes(app, db, store, cfg)
}
