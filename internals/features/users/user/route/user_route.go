package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/features/users/user/controller"
)

// 👤 Session: /exercise/data
func UserSessionRoutes(router fiber.Router, db *gorm.DB, guards ...fiber.Handler) {
	ctrl := controller.NewUserController(db)
	router.Get("/data", append(guards, ctrl.GetUserData)...)
}

// 🔐 Professor: /professor/students, /professor/data
func UserTeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)
	router.Get("/students", ctrl.GetStudents)
	router.Get("/data", ctrl.GetProfessorData)
}
