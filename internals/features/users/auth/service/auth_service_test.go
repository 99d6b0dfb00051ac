package service

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"academia_backend/internals/constants"
	"academia_backend/internals/databases/dbtest"
	"academia_backend/internals/features/users/auth/dto"
	userModel "academia_backend/internals/features/users/user/model"
)

func expectFiberError(t *testing.T, err error, code int, message string) {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, code, fe.Code)
	assert.Equal(t, message, fe.Message)
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:            "Ana",
		Email:           "ana@x.com",
		Password:        "123456",
		ConfirmPassword: "123456",
		Role:            constants.RoleCodeStudent,
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	db := dbtest.New(t)

	user, err := Register(db, validRegister(), bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, constants.RoleStudent, user.Role)

	var stored userModel.UserModel
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "123456", stored.Password, "password stored in plain text")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("123456")))
}

func TestRegisterTeacherRole(t *testing.T) {
	db := dbtest.New(t)
	in := validRegister()
	in.Role = constants.RoleCodeTeacher

	user, err := Register(db, in, bcrypt.MinCost)
	require.NoError(t, err)
	assert.Equal(t, constants.RoleTeacher, user.Role)
}

func TestRegisterValidation(t *testing.T) {
	db := dbtest.New(t)

	cases := []struct {
		name    string
		mutate  func(*dto.RegisterRequest)
		message string
	}{
		{"missing name", func(r *dto.RegisterRequest) { r.Name = "" }, MsgRegisterRequired},
		{"blank email", func(r *dto.RegisterRequest) { r.Email = "   " }, MsgRegisterRequired},
		{"missing confirm", func(r *dto.RegisterRequest) { r.ConfirmPassword = "" }, MsgRegisterRequired},
		{"zero role", func(r *dto.RegisterRequest) { r.Role = 0 }, MsgRegisterRequired},
		{"mismatch", func(r *dto.RegisterRequest) { r.ConfirmPassword = "654321" }, msgPasswordMismatch},
		{"unknown role", func(r *dto.RegisterRequest) { r.Role = 3 }, msgInvalidRole},
		{"too long", func(r *dto.RegisterRequest) {
			r.Password = strings.Repeat("a", 80)
			r.ConfirmPassword = r.Password
		}, msgPasswordTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validRegister()
			tc.mutate(&in)
			_, err := Register(db, in, bcrypt.MinCost)
			expectFiberError(t, err, fiber.StatusBadRequest, tc.message)
		})
	}

	var count int64
	require.NoError(t, db.Model(&userModel.UserModel{}).Count(&count).Error)
	assert.Zero(t, count, "invalid registrations must not persist")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := dbtest.New(t)
	_, err := Register(db, validRegister(), bcrypt.MinCost)
	require.NoError(t, err)

	_, err = Register(db, validRegister(), bcrypt.MinCost)
	expectFiberError(t, err, fiber.StatusConflict, msgEmailTaken)
}

func TestRegisterUniqueConstraintMapsToConflict(t *testing.T) {
	db := dbtest.New(t)
	require.NoError(t, db.Create(&userModel.UserModel{Name: "Ana", Email: "ana@x.com", Password: "x", Role: constants.RoleStudent}).Error)

	// the same insert the service issues after its pre-check
	err := db.Create(&userModel.UserModel{Name: "Outra", Email: "ana@x.com", Password: "y", Role: constants.RoleStudent}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestLogin(t *testing.T) {
	db := dbtest.New(t)
	registered, err := Register(db, validRegister(), bcrypt.MinCost)
	require.NoError(t, err)

	user, err := Login(db, dto.LoginRequest{Email: "ana@x.com", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = Login(db, dto.LoginRequest{Email: "ana@x.com", Password: "errada"})
	expectFiberError(t, err, fiber.StatusUnauthorized, msgLoginBadPassword)

	_, err = Login(db, dto.LoginRequest{Email: "ninguem@x.com", Password: "123456"})
	expectFiberError(t, err, fiber.StatusNotFound, msgLoginNotFound)

	_, err = Login(db, dto.LoginRequest{Email: "ana@x.com"})
	expectFiberError(t, err, fiber.StatusBadRequest, MsgLoginRequired)
}
