package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/features/exercises/exercise/controller"
)

// 🔓 Public: /exercise
func ExercisePublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewExerciseController(db)
	router.Get("/", ctrl.GetAllExercises)
}

// 🔐 Professor: /professor/add_exercises
func ExerciseTeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewExerciseController(db)
	router.Post("/add_exercises", ctrl.AddGeneralExercises)
}
