package dto

import (
	"time"

	"academia_backend/internals/features/exercises/user_exercises/model"
)

// UserExerciseDTO: assignment as seen by the student themself.
type UserExerciseDTO struct {
	ID         uint      `json:"id"`
	Nome       string    `json:"nome"`
	Descricao  string    `json:"descricao"`
	Series     int       `json:"series"`
	Repeticoes int       `json:"repeticoes"`
	AssignedAt time.Time `json:"assignedAt"`
	Completed  bool      `json:"completed"`
}

// StudentExerciseDTO: teacher view of the same rows, without completed.
type StudentExerciseDTO struct {
	ID         uint      `json:"id"`
	Nome       string    `json:"nome"`
	Descricao  string    `json:"descricao"`
	Series     int       `json:"series"`
	Repeticoes int       `json:"repeticoes"`
	AssignedAt time.Time `json:"assignedAt"`
}

// Rows must be loaded with Preload("Exercise"); ids are exercise ids.
func ToUserExerciseDTOs(rows []model.UserExerciseModel) []UserExerciseDTO {
	out := make([]UserExerciseDTO, 0, len(rows))
	for _, r := range rows {
		if r.Exercise == nil {
			continue
		}
		out = append(out, UserExerciseDTO{
			ID:         r.Exercise.ID,
			Nome:       r.Exercise.Name,
			Descricao:  r.Exercise.Description,
			Series:     r.Exercise.Series,
			Repeticoes: r.Exercise.Repetitions,
			AssignedAt: r.AssignedAt,
			Completed:  r.Completed,
		})
	}
	return out
}

func ToStudentExerciseDTOs(rows []model.UserExerciseModel) []StudentExerciseDTO {
	out := make([]StudentExerciseDTO, 0, len(rows))
	for _, r := range rows {
		if r.Exercise == nil {
			continue
		}
		out = append(out, StudentExerciseDTO{
			ID:         r.Exercise.ID,
			Nome:       r.Exercise.Name,
			Descricao:  r.Exercise.Description,
			Series:     r.Exercise.Series,
			Repeticoes: r.Exercise.Repetitions,
			AssignedAt: r.AssignedAt,
		})
	}
	return out
}

/* ===================== ASSIGN ===================== */

type AssignExerciseRequest struct {
	ExerciseID uint `json:"exerciseId" validate:"required"`
}

type AssignExerciseResponse struct {
	Message      string                   `json:"message"`
	UserExercise *model.UserExerciseModel `json:"userExercise"`
}
