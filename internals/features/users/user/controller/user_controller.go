package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/features/users/user/service"
	helper "academia_backend/internals/helpers"
	authMiddleware "academia_backend/internals/middlewares/auth"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /exercise/data (profile user dari session)
func (uc *UserController) GetUserData(c *fiber.Ctx) error {
	userID, err := authMiddleware.UserIDFromLocals(c)
	if err != nil {
		return err
	}
	profile, err := service.GetUserProfile(uc.DB.WithContext(c.UserContext()), userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, profile)
}

// GET /professor/data
func (uc *UserController) GetProfessorData(c *fiber.Ctx) error {
	userID, err := authMiddleware.UserIDFromLocals(c)
	if err != nil {
		return err
	}
	profile, err := service.GetProfessorProfile(uc.DB.WithContext(c.UserContext()), userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, profile)
}

// GET /professor/students
func (uc *UserController) GetStudents(c *fiber.Ctx) error {
	students, err := service.ListStudents(uc.DB.WithContext(c.UserContext()))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, students)
}
