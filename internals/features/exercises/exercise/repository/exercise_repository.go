package repository

import (
	"gorm.io/gorm"

	"academia_backend/internals/features/exercises/exercise/model"
)

func ListExercises(db *gorm.DB) ([]model.ExerciseModel, error) {
	var list []model.ExerciseModel
	if err := db.Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func FindExerciseByID(db *gorm.DB, id uint) (*model.ExerciseModel, error) {
	var ex model.ExerciseModel
	if err := db.First(&ex, id).Error; err != nil {
		return nil, err
	}
	return &ex, nil
}

func CreateExercise(db *gorm.DB, ex *model.ExerciseModel) error {
	return db.Create(ex).Error
}
