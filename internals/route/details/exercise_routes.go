package details

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	exerciseRoute "academia_backend/internals/features/exercises/exercise/route"
	userExerciseRoute "academia_backend/internals/features/exercises/user_exercises/route"
	userRoute "academia_backend/internals/features/users/user/route"
	authMiddleware "academia_backend/internals/middlewares/auth"
)

// /exercise: katalog publik, /user dan /data wajib session
func ExerciseRoutes(app *fiber.App, db *gorm.DB, store *session.Store) {
	exercise := app.Group("/exercise")
	sessionAuth := authMiddleware.SessionAuth(store)

	exerciseRoute.ExercisePublicRoutes(exercise, db)
	userExerciseRoute.UserExerciseSessionRoutes(exercise, db, sessionAuth)
	userRoute.UserSessionRoutes(exercise, db, sessionAuth)
}
