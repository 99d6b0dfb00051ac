package service

import (
	"gorm.io/gorm"

	"academia_backend/internals/features/exercises/exercise/dto"
	"academia_backend/internals/features/exercises/exercise/model"
	exerciseRepo "academia_backend/internals/features/exercises/exercise/repository"
	helper "academia_backend/internals/helpers"
)

const (
	MsgFieldsRequired = "Todos os campos são obrigatórios."
	msgListFailed     = "Erro ao buscar exercícios."
	msgCreateFailed   = "Erro ao adicionar exercício."
)

// ListAll returns the whole catalog ordered by id. An empty catalog is an
// empty slice, not an error.
func ListAll(db *gorm.DB) ([]dto.ExerciseDTO, error) {
	list, err := exerciseRepo.ListExercises(db)
	if err != nil {
		return nil, helper.Internal("list exercises", err, msgListFailed)
	}
	return dto.ToExerciseDTOs(list), nil
}

func Create(db *gorm.DB, in dto.CreateExerciseRequest) (*model.ExerciseModel, error) {
	in.Normalize()
	if err := helper.ValidateStruct(in, MsgFieldsRequired); err != nil {
		return nil, err
	}

	ex := in.ToModel()
	if err := exerciseRepo.CreateExercise(db, ex); err != nil {
		return nil, helper.Internal("create exercise", err, msgCreateFailed)
	}
	return ex, nil
}
