package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"academia_backend/internals/features/users/auth/dto"
	"academia_backend/internals/features/users/auth/service"
	helper "academia_backend/internals/helpers"
	"academia_backend/internals/sessions"
)

const (
	msgLoginOK      = "Login bem-sucedido"
	msgRegisterOK   = "Usuário cadastrado com sucesso."
	msgLogoutOK     = "Logout bem-sucedido."
	msgLogoutFailed = "Erro ao fazer logout."
)

type AuthController struct {
	DB         *gorm.DB
	Store      *session.Store
	BcryptCost int
}

func NewAuthController(db *gorm.DB, store *session.Store, bcryptCost int) *AuthController {
	return &AuthController{DB: db, Store: store, BcryptCost: bcryptCost}
}

// POST /login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := helper.BodyParse(c, &in, service.MsgLoginRequired); err != nil {
		return err
	}

	user, err := service.Login(ac.DB.WithContext(c.UserContext()), in)
	if err != nil {
		return err
	}

	sess, err := ac.Store.Get(c)
	if err != nil {
		return helper.Internal("login: load session", err, service.MsgServerError)
	}
	// Session baru setiap login; id lama dibuang.
	if err := sess.Regenerate(); err != nil {
		return helper.Internal("login: regenerate session", err, service.MsgServerError)
	}
	sess.Set(sessions.KeyUserID, user.ID)
	sess.Set(sessions.KeyRole, user.Role)
	if err := sess.Save(); err != nil {
		return helper.Internal("login: save session", err, service.MsgServerError)
	}

	return helper.JsonOK(c, dto.LoginResponse{
		Message: msgLoginOK,
		User:    dto.ToLoginUserDTO(user),
	})
}

// POST /register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := helper.BodyParse(c, &in, service.MsgRegisterRequired); err != nil {
		return err
	}

	user, err := service.Register(ac.DB.WithContext(c.UserContext()), in, ac.BcryptCost)
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, dto.RegisterResponse{
		Message: msgRegisterOK,
		User:    dto.ToRegisteredUserDTO(user),
	})
}

// POST /logout, idempotent: tanpa session tetap 200
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	sess, err := ac.Store.Get(c)
	if err != nil {
		log.Printf("[ERROR] logout: load session: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, msgLogoutFailed)
	}
	if err := sess.Destroy(); err != nil {
		log.Printf("[ERROR] logout: destroy session: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, msgLogoutFailed)
	}
	return helper.JsonMessage(c, fiber.StatusOK, msgLogoutOK)
}
