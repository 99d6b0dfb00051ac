package dto

import (
	"strings"

	userModel "academia_backend/internals/features/users/user/model"
)

/* ===================== REQUEST ===================== */

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

// Role: 1 = teacher, 2 = student
type RegisterRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Role            int    `json:"role" validate:"required"`
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

/* ===================== RESPONSE ===================== */

type LoginUserDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	User    LoginUserDTO `json:"user"`
}

type RegisteredUserDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type RegisterResponse struct {
	Message string            `json:"message"`
	User    RegisteredUserDTO `json:"user"`
}

func ToLoginUserDTO(u *userModel.UserModel) LoginUserDTO {
	return LoginUserDTO{ID: u.ID, Name: u.Name, Role: u.Role}
}

func ToRegisteredUserDTO(u *userModel.UserModel) RegisteredUserDTO {
	return RegisteredUserDTO{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
