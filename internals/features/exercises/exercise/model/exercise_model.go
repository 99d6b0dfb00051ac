package model

import "time"

type ExerciseModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Series      int       `gorm:"not null" json:"series"`
	Repetitions int       `gorm:"not null" json:"repetitions"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ExerciseModel) TableName() string {
	return "exercises"
}
