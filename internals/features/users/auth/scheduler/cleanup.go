package scheduler

import (
	"context"
	"log"
	"time"

	"academia_backend/internals/sessions"
)

const cleanupBatch = 100

// StartSessionCleanupScheduler removes expired rows from the sessions table
// every interval until ctx is cancelled.
func StartSessionCleanupScheduler(ctx context.Context, storage *sessions.GormStorage, interval time.Duration) {
	if storage == nil || interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("[CLEANUP] Scheduler sessions dihentikan")
				return
			case <-ticker.C:
				RunSessionCleanup(storage, time.Now())
			}
		}
	}()
}

// RunSessionCleanup drains expired sessions in batches and returns the total removed.
func RunSessionCleanup(storage *sessions.GormStorage, now time.Time) int64 {
	log.Println("[CLEANUP] Menjalankan pembersihan sessions...")

	var total int64
	for {
		n, err := storage.DeleteExpired(now, cleanupBatch)
		if err != nil {
			log.Printf("[CLEANUP ERROR] Gagal hapus session kadaluarsa: %v", err)
			return total
		}
		total += n
		if n < cleanupBatch {
			break
		}
	}

	if total > 0 {
		log.Printf("[CLEANUP] %d session kadaluarsa dihapus", total)
	} else {
		log.Println("[CLEANUP] Tidak ada session yang memenuhi syarat dihapus")
	}
	return total
}
