package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"academia_backend/internals/constants"
	"academia_backend/internals/features/users/auth/dto"
	authHelper "academia_backend/internals/features/users/auth/helper"
	authRepo "academia_backend/internals/features/users/auth/repository"
	userModel "academia_backend/internals/features/users/user/model"
	helper "academia_backend/internals/helpers"
)

const (
	MsgLoginRequired    = "Email e senha são obrigatórios."
	msgLoginNotFound    = "Usuário não encontrado"
	msgLoginBadPassword = "Senha incorreta"
	MsgServerError      = "Erro no servidor"

	MsgRegisterRequired = "Todos os campos são obrigatórios."
	msgPasswordMismatch = "As senhas não coincidem."
	msgInvalidRole      = `O valor de "role" é inválido.`
	msgEmailTaken       = "Este email já está cadastrado."
	msgPasswordTooLong  = "A senha deve ter no máximo 72 bytes."
	msgRegisterFailed   = "Erro ao cadastrar usuário."
)

// ========================== LOGIN ==========================

// Login verifies credentials and returns the matching user. Session handling
// stays in the controller.
func Login(db *gorm.DB, in dto.LoginRequest) (*userModel.UserModel, error) {
	in.Normalize()
	if err := helper.ValidateStruct(in, MsgLoginRequired); err != nil {
		return nil, err
	}

	user, err := authRepo.FindUserByEmail(db, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, msgLoginNotFound)
		}
		return nil, helper.Internal("login", err, MsgServerError)
	}

	if !authHelper.CheckPasswordHash(user.Password, in.Password) {
		return nil, fiber.NewError(fiber.StatusUnauthorized, msgLoginBadPassword)
	}
	return user, nil
}

// ========================== REGISTER ==========================

func Register(db *gorm.DB, in dto.RegisterRequest, cost int) (*userModel.UserModel, error) {
	in.Normalize()
	if err := helper.ValidateStruct(in, MsgRegisterRequired); err != nil {
		return nil, err
	}
	if in.Password != in.ConfirmPassword {
		return nil, fiber.NewError(fiber.StatusBadRequest, msgPasswordMismatch)
	}
	role, ok := constants.RoleFromCode(in.Role)
	if !ok {
		return nil, fiber.NewError(fiber.StatusBadRequest, msgInvalidRole)
	}

	taken, err := authRepo.IsEmailTaken(db, in.Email)
	if err != nil {
		return nil, helper.Internal("register: check email", err, msgRegisterFailed)
	}
	if taken {
		return nil, fiber.NewError(fiber.StatusConflict, msgEmailTaken)
	}

	hash, err := authHelper.HashPassword(in.Password, cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fiber.NewError(fiber.StatusBadRequest, msgPasswordTooLong)
		}
		return nil, helper.Internal("register: hash", err, msgRegisterFailed)
	}

	user := &userModel.UserModel{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     role,
	}
	if err := authRepo.CreateUser(db, user); err != nil {
		// Dua registrasi paralel dengan email sama: constraint unik yang menang.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusConflict, msgEmailTaken)
		}
		return nil, helper.Internal("register: create", err, msgRegisterFailed)
	}

	log.Printf("[INFO] Usuário %d cadastrado (%s)", user.ID, user.Role)
	return user, nil
}
