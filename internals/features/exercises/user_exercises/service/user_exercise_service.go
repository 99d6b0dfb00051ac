package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/constants"
	exerciseRepo "academia_backend/internals/features/exercises/exercise/repository"
	"academia_backend/internals/features/exercises/user_exercises/dto"
	"academia_backend/internals/features/exercises/user_exercises/model"
	assignRepo "academia_backend/internals/features/exercises/user_exercises/repository"
	authRepo "academia_backend/internals/features/users/auth/repository"
	helper "academia_backend/internals/helpers"
)

const (
	MsgMissingParams      = "Parâmetros insuficientes."
	msgExerciseNotFound   = "Exercício não encontrado."
	msgStudentNotFound    = "Aluno não encontrado."
	msgAlreadyAssigned    = "Esse Exercício já foi atribuído a este aluno."
	msgAssignmentNotFound = "Exercício não encontrado para o aluno."

	msgUserListFailed    = "Erro ao buscar exercícios."
	msgStudentListFailed = "Erro ao buscar exercícios do aluno."
	msgAssignFailed      = "Erro ao adicionar exercício."
	msgRemoveFailed      = "Erro ao remover exercício."
)

// ListForUser: assignments of the session user.
func ListForUser(db *gorm.DB, userID uint) ([]dto.UserExerciseDTO, error) {
	rows, err := assignRepo.ListByUser(db, userID)
	if err != nil {
		return nil, helper.Internal("list user exercises", err, msgUserListFailed)
	}
	return dto.ToUserExerciseDTOs(rows), nil
}

// ListForStudent: teacher view; 404 unless the id is a student.
func ListForStudent(db *gorm.DB, studentID uint) ([]dto.StudentExerciseDTO, error) {
	if err := ensureStudent(db, studentID, msgStudentListFailed); err != nil {
		return nil, err
	}
	rows, err := assignRepo.ListByUser(db, studentID)
	if err != nil {
		return nil, helper.Internal("list student exercises", err, msgStudentListFailed)
	}
	return dto.ToStudentExerciseDTOs(rows), nil
}

// AssignToStudent is the only way to create an assignment. The application
// check answers 400; a concurrent duplicate that slips past it hits the
// composite unique index and answers 409.
func AssignToStudent(db *gorm.DB, studentID uint, in dto.AssignExerciseRequest) (*model.UserExerciseModel, error) {
	if studentID == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, MsgMissingParams)
	}
	if err := helper.ValidateStruct(in, MsgMissingParams); err != nil {
		return nil, err
	}

	if _, err := exerciseRepo.FindExerciseByID(db, in.ExerciseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, msgExerciseNotFound)
		}
		return nil, helper.Internal("assign: find exercise", err, msgAssignFailed)
	}
	if err := ensureStudent(db, studentID, msgAssignFailed); err != nil {
		return nil, err
	}

	_, err := assignRepo.FindByPair(db, studentID, in.ExerciseID)
	switch {
	case err == nil:
		return nil, fiber.NewError(fiber.StatusBadRequest, msgAlreadyAssigned)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, helper.Internal("assign: find pair", err, msgAssignFailed)
	}

	row := &model.UserExerciseModel{
		UserID:     studentID,
		ExerciseID: in.ExerciseID,
		AssignedAt: time.Now().UTC(),
	}
	if err := assignRepo.Create(db, row); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusConflict, msgAlreadyAssigned)
		}
		return nil, helper.Internal("assign: create", err, msgAssignFailed)
	}

	log.Printf("[INFO] Exercício %d atribuído ao aluno %d", in.ExerciseID, studentID)
	return row, nil
}

func RemoveFromStudent(db *gorm.DB, studentID, exerciseID uint) error {
	row, err := assignRepo.FindByPair(db, studentID, exerciseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, msgAssignmentNotFound)
		}
		return helper.Internal("remove: find pair", err, msgRemoveFailed)
	}
	if err := assignRepo.Delete(db, row); err != nil {
		return helper.Internal("remove: delete", err, msgRemoveFailed)
	}
	return nil
}

func ensureStudent(db *gorm.DB, studentID uint, failMsg string) error {
	if _, err := authRepo.FindUserByIDAndRole(db, studentID, constants.RoleStudent); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, msgStudentNotFound)
		}
		return helper.Internal("find student", err, failMsg)
	}
	return nil
}
