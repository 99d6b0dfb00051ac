package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/constants"
	authRepo "academia_backend/internals/features/users/auth/repository"
	"academia_backend/internals/features/users/user/dto"
	helper "academia_backend/internals/helpers"
)

const (
	msgUserNotFound      = "Usuário não encontrado."
	msgProfessorNotFound = "Professor não encontrado."
	msgUserFetchFailed   = "Erro ao buscar dados do usuário."
	msgStudentsFailed    = "Erro ao buscar alunos."
)

func GetUserProfile(db *gorm.DB, userID uint) (*dto.UserProfileDTO, error) {
	return profile(db, userID, msgUserNotFound)
}

func GetProfessorProfile(db *gorm.DB, professorID uint) (*dto.UserProfileDTO, error) {
	return profile(db, professorID, msgProfessorNotFound)
}

func profile(db *gorm.DB, userID uint, notFound string) (*dto.UserProfileDTO, error) {
	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, notFound)
		}
		return nil, helper.Internal("profile", err, msgUserFetchFailed)
	}
	out := dto.ToUserProfileDTO(user)
	return &out, nil
}

// ListStudents returns every student ordered by id; never nil.
func ListStudents(db *gorm.DB) ([]dto.UserProfileDTO, error) {
	users, err := authRepo.FindUsersByRole(db, constants.RoleStudent)
	if err != nil {
		return nil, helper.Internal("list students", err, msgStudentsFailed)
	}
	return dto.ToUserProfileDTOs(users), nil
}
