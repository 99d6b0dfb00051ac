package details

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"academia_backend/internals/constants"
	exerciseRoute "academia_backend/internals/features/exercises/exercise/route"
	userExerciseRoute "academia_backend/internals/features/exercises/user_exercises/route"
	userRoute "academia_backend/internals/features/users/user/route"
	authMiddleware "academia_backend/internals/middlewares/auth"
)

// /professor/*: semua route wajib session + role teacher
func ProfessorRoutes(app *fiber.App, db *gorm.DB, store *session.Store) {
	professor := app.Group("/professor",
		authMiddleware.SessionAuth(store),
		authMiddleware.OnlyRoles(
			constants.RoleErrorTeacher("esta área"),
			constants.TeacherOnly...,
		),
	)

	userRoute.UserTeacherRoutes(professor, db)
	exerciseRoute.ExerciseTeacherRoutes(professor, db)
	userExerciseRoute.UserExerciseTeacherRoutes(professor, db)
}
