// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"gorm.io/gorm"

	userModel "academia_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uint) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByIDAndRole returns gorm.ErrRecordNotFound when the user exists with another role.
func FindUserByIDAndRole(db *gorm.DB, userID uint, role string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("id = ? AND role = ?", userID, role).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUsersByRole(db *gorm.DB, role string) ([]userModel.UserModel, error) {
	var users []userModel.UserModel
	if err := db.Where("role = ?", role).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// IsEmailTaken: cek apakah email sudah dipakai
func IsEmailTaken(db *gorm.DB, email string) (bool, error) {
	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}
