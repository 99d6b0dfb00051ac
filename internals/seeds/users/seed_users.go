package users

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"academia_backend/internals/constants"
	authHelper "academia_backend/internals/features/users/auth/helper"
	"academia_backend/internals/features/users/user/model"
)

type UserSeed struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedUsersFromJSON inserts users that do not exist yet (matched by email).
// Returns how many rows were inserted.
func SeedUsersFromJSON(db *gorm.DB, filePath string, cost int) (int, error) {
	log.Println("📥 Lendo arquivo de usuários:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", filePath, err)
	}

	var inputs []UserSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("decode %s: %w", filePath, err)
	}

	inserted := 0
	for _, data := range inputs {
		if !constants.IsValidRole(data.Role) {
			log.Printf("⚠️ Role '%s' inválida para '%s', ignorado.", data.Role, data.Email)
			continue
		}

		var existing model.UserModel
		err := db.Where("email = ?", data.Email).First(&existing).Error
		if err == nil {
			log.Printf("ℹ️ Usuário '%s' já existe, ignorado.", data.Email)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return inserted, err
		}

		// 🔐 Hash password sebelum disimpan
		hashedPassword, err := authHelper.HashPassword(data.Password, cost)
		if err != nil {
			log.Printf("❌ Falha ao gerar hash para '%s': %v", data.Email, err)
			continue
		}

		newUser := model.UserModel{
			Name:     data.Name,
			Email:    data.Email,
			Password: hashedPassword,
			Role:     data.Role,
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Falha ao inserir '%s': %v", data.Email, err)
			continue
		}
		inserted++
		log.Printf("✅ Usuário '%s' inserido", data.Email)
	}
	return inserted, nil
}
