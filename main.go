package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"academia_backend/internals/configs"
	database "academia_backend/internals/databases"
	scheduler "academia_backend/internals/features/users/auth/scheduler"
	"academia_backend/internals/seeds"
	"academia_backend/internals/server"
	"academia_backend/internals/sessions"
)

func main() {
	configs.LoadEnv()
	cfg := configs.Load()

	// 🔌 DB connect + pool + warm-up
	db := database.ConnectDB(cfg)
	database.TunePool(db, cfg.DBDriver)
	database.WarmUpQueries(db)

	// 🌱 seeds opsional
	if cfg.RunSeeds {
		if err := seeds.RunAllSeeds(db, cfg.SeedDir, cfg.BcryptCost); err != nil {
			log.Fatalf("❌ Seed gagal: %v", err)
		}
	}

	store, err := sessions.NewStore(cfg, db)
	if err != nil {
		log.Fatalf("❌ Session store: %v", err)
	}

	// ⏱ scheduler setelah DB siap
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	if gs, ok := store.Storage.(*sessions.GormStorage); ok {
		scheduler.StartSessionCleanupScheduler(bgCtx, gs, cfg.SessionCleanupInterval)
	}

	app := server.New(cfg, db, store)

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup storage & pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down...")

	stopBackground()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("[WARN] shutdown: %v", err)
	}
	if err := store.Storage.Close(); err != nil {
		log.Printf("[WARN] close session storage: %v", err)
	}
	database.Close(db)
}
