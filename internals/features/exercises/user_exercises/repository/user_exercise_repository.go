package repository

import (
	"gorm.io/gorm"

	"academia_backend/internals/features/exercises/user_exercises/model"
)

// ListByUser loads the assignments of one user with their exercise, oldest first.
func ListByUser(db *gorm.DB, userID uint) ([]model.UserExerciseModel, error) {
	var rows []model.UserExerciseModel
	if err := db.Preload("Exercise").
		Where("user_id = ?", userID).
		Order("assigned_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func FindByPair(db *gorm.DB, userID, exerciseID uint) (*model.UserExerciseModel, error) {
	var row model.UserExerciseModel
	if err := db.Where("user_id = ? AND exercise_id = ?", userID, exerciseID).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func Create(db *gorm.DB, row *model.UserExerciseModel) error {
	return db.Create(row).Error
}

func Delete(db *gorm.DB, row *model.UserExerciseModel) error {
	return db.Delete(row).Error
}
