package exercises

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"academia_backend/internals/features/exercises/exercise/model"
)

type ExerciseSeed struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Series      int    `json:"series"`
	Repetitions int    `json:"repetitions"`
}

// SeedExercisesFromJSON inserts exercises whose name is not in the catalog yet.
func SeedExercisesFromJSON(db *gorm.DB, filePath string) (int, error) {
	log.Println("📥 Lendo arquivo de exercícios:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", filePath, err)
	}

	var inputs []ExerciseSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("decode %s: %w", filePath, err)
	}

	inserted := 0
	for _, data := range inputs {
		if data.Name == "" || data.Series <= 0 || data.Repetitions <= 0 {
			log.Printf("⚠️ Exercício inválido '%s', ignorado.", data.Name)
			continue
		}

		var existing model.ExerciseModel
		err := db.Where("name = ?", data.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return inserted, err
		}

		row := model.ExerciseModel{
			Name:        data.Name,
			Description: data.Description,
			Series:      data.Series,
			Repetitions: data.Repetitions,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Falha ao inserir exercício '%s': %v", data.Name, err)
			continue
		}
		inserted++
	}
	log.Printf("✅ %d exercício(s) inserido(s)", inserted)
	return inserted, nil
}
