package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/features/exercises/user_exercises/dto"
	"academia_backend/internals/features/exercises/user_exercises/service"
	helper "academia_backend/internals/helpers"
	authMiddleware "academia_backend/internals/middlewares/auth"
)

const (
	msgAssigned     = "Exercício atribuído com sucesso."
	msgRemoved      = "Exercício removido com sucesso."
	msgInvalidParam = "Parâmetro inválido."
)

type UserExerciseController struct {
	DB *gorm.DB
}

func NewUserExerciseController(db *gorm.DB) *UserExerciseController {
	return &UserExerciseController{DB: db}
}

// paramID reads a positive integer path parameter.
func paramID(c *fiber.Ctx, key string) (uint, error) {
	id, err := c.ParamsInt(key)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, msgInvalidParam)
	}
	return uint(id), nil
}

// GET /exercise/user
func (uc *UserExerciseController) GetUserExercises(c *fiber.Ctx) error {
	userID, err := authMiddleware.UserIDFromLocals(c)
	if err != nil {
		return err
	}
	list, err := service.ListForUser(uc.DB.WithContext(c.UserContext()), userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, list)
}

// GET /professor/student/:id/exercises
func (uc *UserExerciseController) GetStudentExercises(c *fiber.Ctx) error {
	studentID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	list, err := service.ListForStudent(uc.DB.WithContext(c.UserContext()), studentID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, list)
}

// POST /professor/student/:studentId/exercises
func (uc *UserExerciseController) AssignExerciseToStudent(c *fiber.Ctx) error {
	studentID, err := paramID(c, "studentId")
	if err != nil {
		return err
	}
	var in dto.AssignExerciseRequest
	if err := helper.BodyParse(c, &in, service.MsgMissingParams); err != nil {
		return err
	}

	row, err := service.AssignToStudent(uc.DB.WithContext(c.UserContext()), studentID, in)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, dto.AssignExerciseResponse{
		Message:      msgAssigned,
		UserExercise: row,
	})
}

// DELETE /professor/student/:id/exercises/:exerciseId
func (uc *UserExerciseController) RemoveStudentExercise(c *fiber.Ctx) error {
	studentID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	exerciseID, err := paramID(c, "exerciseId")
	if err != nil {
		return err
	}
	if err := service.RemoveFromStudent(uc.DB.WithContext(c.UserContext()), studentID, exerciseID); err != nil {
		return err
	}
	return helper.JsonMessage(c, fiber.StatusOK, msgRemoved)
}
