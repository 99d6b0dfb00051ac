package scheduler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"academia_backend/internals/sessions"
)

func newCleanupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&sessions.SessionModel{}))
	return db
}

func countSessions(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&sessions.SessionModel{}).Count(&n).Error)
	return n
}

func TestRunSessionCleanupDrainsAllBatches(t *testing.T) {
	db := newCleanupDB(t)
	past := time.Now().Add(-time.Hour).Unix()
	rows := make([]sessions.SessionModel, 0, cleanupBatch+20)
	for i := 0; i < cleanupBatch+20; i++ {
		rows = append(rows, sessions.SessionModel{Key: fmt.Sprintf("old-%d", i), Data: []byte("x"), ExpiresAt: past})
	}
	require.NoError(t, db.CreateInBatches(rows, 50).Error)
	storage := sessions.NewGormStorage(db)
	require.NoError(t, storage.Set("alive", []byte("y"), time.Hour))

	assert.Equal(t, int64(cleanupBatch+20), RunSessionCleanup(storage, time.Now()))
	assert.Equal(t, int64(1), countSessions(t, db), "only the live session should be left")
}

func TestStartSessionCleanupSchedulerStopsOnCancel(t *testing.T) {
	db := newCleanupDB(t)
	storage := sessions.NewGormStorage(db)
	require.NoError(t, db.Create(&sessions.SessionModel{Key: "old", Data: []byte("x"), ExpiresAt: time.Now().Add(-time.Minute).Unix()}).Error)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartSessionCleanupScheduler(ctx, storage, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		var n int64
		db.Model(&sessions.SessionModel{}).Count(&n)
		return n == 0
	}, 2*time.Second, 10*time.Millisecond, "scheduler did not remove expired session")
}
