// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"academia_backend/internals/configs"
	routeDetails "academia_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, store *session.Store, cfg *configs.Config) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db, store, cfg)

	// ===================== EXERCISE =====================
	log.Println("[INFO] Setting up ExerciseRoutes...")
	routeDetails.ExerciseRoutes(app, db, store)

	// ===================== PROFESSOR =====================
	log.Println("[INFO] Setting up ProfessorRoutes (session + teacher)...")
	routeDetails.ProfessorRoutes(app, db, store)

	log.Println("[INFO] Routes ready.")
}
