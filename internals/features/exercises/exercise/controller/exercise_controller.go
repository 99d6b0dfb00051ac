package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/features/exercises/exercise/dto"
	"academia_backend/internals/features/exercises/exercise/service"
	helper "academia_backend/internals/helpers"
)

const (
	msgEmptyCatalog = "Nenhum exercício cadastrado no momento."
	msgCreated      = "Exercício adicionado com sucesso."
)

type ExerciseController struct {
	DB *gorm.DB
}

func NewExerciseController(db *gorm.DB) *ExerciseController {
	return &ExerciseController{DB: db}
}

// GET /exercise
func (ec *ExerciseController) GetAllExercises(c *fiber.Ctx) error {
	list, err := service.ListAll(ec.DB.WithContext(c.UserContext()))
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return helper.JsonMessage(c, fiber.StatusOK, msgEmptyCatalog)
	}
	return helper.JsonOK(c, list)
}

// POST /professor/add_exercises
func (ec *ExerciseController) AddGeneralExercises(c *fiber.Ctx) error {
	var in dto.CreateExerciseRequest
	if err := helper.BodyParse(c, &in, service.MsgFieldsRequired); err != nil {
		return err
	}

	ex, err := service.Create(ec.DB.WithContext(c.UserContext()), in)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, dto.CreateExerciseResponse{
		Message:  msgCreated,
		Exercise: ex,
	})
}
