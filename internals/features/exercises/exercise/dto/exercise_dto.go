package dto

import (
	"strings"

	"academia_backend/internals/features/exercises/exercise/model"
)

// ExerciseDTO is the client-facing (Portuguese) projection of an exercise.
type ExerciseDTO struct {
	ID         uint   `json:"id"`
	Nome       string `json:"nome"`
	Descricao  string `json:"descricao"`
	Series     int    `json:"series"`
	Repeticoes int    `json:"repeticoes"`
}

func ToExerciseDTO(e *model.ExerciseModel) ExerciseDTO {
	return ExerciseDTO{
		ID:         e.ID,
		Nome:       e.Name,
		Descricao:  e.Description,
		Series:     e.Series,
		Repeticoes: e.Repetitions,
	}
}

func ToExerciseDTOs(list []model.ExerciseModel) []ExerciseDTO {
	out := make([]ExerciseDTO, 0, len(list))
	for i := range list {
		out = append(out, ToExerciseDTO(&list[i]))
	}
	return out
}

/* ===================== CREATE ===================== */

type CreateExerciseRequest struct {
	Nome       string `json:"nome" validate:"required"`
	Descricao  string `json:"descricao" validate:"required"`
	Series     int    `json:"series" validate:"required,gt=0"`
	Repeticoes int    `json:"repeticoes" validate:"required,gt=0"`
}

func (r *CreateExerciseRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	r.Descricao = strings.TrimSpace(r.Descricao)
}

func (r CreateExerciseRequest) ToModel() *model.ExerciseModel {
	return &model.ExerciseModel{
		Name:        r.Nome,
		Description: r.Descricao,
		Series:      r.Series,
		Repetitions: r.Repeticoes,
	}
}

type CreateExerciseResponse struct {
	Message  string               `json:"message"`
	Exercise *model.ExerciseModel `json:"exercise"`
}
