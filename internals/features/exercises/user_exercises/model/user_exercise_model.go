package model

import (
	"time"

	exerciseModel "academia_backend/internals/features/exercises/exercise/model"
	userModel "academia_backend/internals/features/users/user/model"
)

// UserExerciseModel links one student to one exercise. The composite unique
// index keeps at most one row per (user_id, exercise_id).
type UserExerciseModel struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"column:user_id;not null;uniqueIndex:idx_user_exercises_user_exercise,priority:1" json:"user_id"`
	ExerciseID uint      `gorm:"column:exercise_id;not null;uniqueIndex:idx_user_exercises_user_exercise,priority:2;index" json:"exercise_id"`
	AssignedAt time.Time `gorm:"column:assigned_at;not null" json:"assigned_at"`

	// reserved: no endpoint flips it yet
	Completed bool `gorm:"column:completed;not null;default:false" json:"completed"`

	Exercise *exerciseModel.ExerciseModel `gorm:"foreignKey:ExerciseID;constraint:OnDelete:CASCADE" json:"exercise,omitempty"`
	User     *userModel.UserModel         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserExerciseModel) TableName() string {
	return "user_exercises"
}
