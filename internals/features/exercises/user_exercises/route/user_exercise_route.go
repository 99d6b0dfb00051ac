package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/features/exercises/user_exercises/controller"
)

// 👤 Session: /exercise/user
func UserExerciseSessionRoutes(router fiber.Router, db *gorm.DB, guards ...fiber.Handler) {
	ctrl := controller.NewUserExerciseController(db)
	router.Get("/user", append(guards, ctrl.GetUserExercises)...)
}

// 🔐 Professor: /professor/student/...
func UserExerciseTeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserExerciseController(db)

	student := router.Group("/student")
	student.Post("/:studentId/exercises", ctrl.AssignExerciseToStudent)
	student.Get("/:id/exercises", ctrl.GetStudentExercises)
	student.Delete("/:id/exercises/:exerciseId", ctrl.RemoveStudentExercise)
}
