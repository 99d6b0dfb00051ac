package seeds

import (
	"log"
	"path/filepath"

	"gorm.io/gorm"

	exercises "academia_backend/internals/seeds/exercises"
	users "academia_backend/internals/seeds/users"
)

const (
	usersFile     = "data_users.json"
	exercisesFile = "data_exercises.json"
)

func RunAllSeeds(db *gorm.DB, dir string, cost int) error {
	//* User
	if _, err := users.SeedUsersFromJSON(db, filepath.Join(dir, usersFile), cost); err != nil {
		return err
	}

	//* Exercise
	if _, err := exercises.SeedExercisesFromJSON(db, filepath.Join(dir, exercisesFile)); err != nil {
		return err
	}

	log.Println("🌱 Seeds concluídos")
	return nil
}
