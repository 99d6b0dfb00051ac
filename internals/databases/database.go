package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"academia_backend/internals/configs"
	exerciseModel "academia_backend/internals/features/exercises/exercise/model"
	userExerciseModel "academia_backend/internals/features/exercises/user_exercises/model"
	userModel "academia_backend/internals/features/users/user/model"
	"academia_backend/internals/sessions"
)

var ErrUnknownDriver = errors.New("unknown DB_DRIVER")

// Open builds a *gorm.DB for the configured driver. Errors are translated
// (gorm.ErrDuplicatedKey etc.) so callers do not need driver-specific checks.
func Open(cfg *configs.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         configs.NewGormLogger(cfg.DBLogLevel),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}

	switch cfg.DBDriver {
	case "postgres", "":
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=academia&options=-c statement_timeout=3000",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBName,
			cfg.DBSSLMode,
		)
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), gormCfg)
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.SQLiteDSN), gormCfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DBDriver)
	}
}

func ConnectDB(cfg *configs.Config) *gorm.DB {
	log.Printf("🔌 Connecting to database (%s)...", cfg.DBDriver)

	db, err := Open(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to migrate DB: %v", err)
	}
	log.Println("✅ DB connected.")
	return db
}

// AutoMigrate creates or updates users, exercises, user_exercises and sessions.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&exerciseModel.ExerciseModel{},
		&userExerciseModel.UserExerciseModel{},
		&sessions.SessionModel{},
	)
}

func TunePool(db *gorm.DB, driver string) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	if driver == "sqlite" {
		// sqlite serializes writers; one connection avoids SQLITE_BUSY under load
		sqlDB.SetMaxOpenConns(1)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries(db *gorm.DB) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(db); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
