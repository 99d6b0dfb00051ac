package sessions

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const storageQueryTimeout = 3 * time.Second

// SessionModel backs the database session storage.
type SessionModel struct {
	Key       string `gorm:"column:session_key;primaryKey;size:64"`
	Data      []byte `gorm:"column:session_data"`
	ExpiresAt int64  `gorm:"column:session_expires_at;not null;default:0;index"` // unix seconds, 0 = never
}

func (SessionModel) TableName() string {
	return "sessions"
}

// GormStorage implements fiber.Storage on top of the sessions table.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func (s *GormStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), storageQueryTimeout)
	defer cancel()

	var row SessionModel
	err := s.db.WithContext(ctx).Where("session_key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if row.ExpiresAt != 0 && row.ExpiresAt <= time.Now().Unix() {
		return nil, nil
	}
	return row.Data, nil
}

func (s *GormStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	var expiresAt int64
	if exp > 0 {
		expiresAt = time.Now().Add(exp).Unix()
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageQueryTimeout)
	defer cancel()

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"session_data", "session_expires_at"}),
	}).Create(&SessionModel{Key: key, Data: val, ExpiresAt: expiresAt}).Error
}

func (s *GormStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), storageQueryTimeout)
	defer cancel()
	return s.db.WithContext(ctx).Where("session_key = ?", key).Delete(&SessionModel{}).Error
}

func (s *GormStorage) Reset() error {
	return s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&SessionModel{}).Error
}

// Close is a no-op: the *gorm.DB belongs to the caller.
func (s *GormStorage) Close() error {
	return nil
}

// DeleteExpired removes up to limit expired rows and reports how many went.
func (s *GormStorage) DeleteExpired(now time.Time, limit int) (int64, error) {
	sub := s.db.Model(&SessionModel{}).
		Select("session_key").
		Where("session_expires_at <> 0 AND session_expires_at <= ?", now.Unix()).
		Limit(limit)
	res := s.db.Where("session_key IN (?)", sub).Delete(&SessionModel{})
	return res.RowsAffected, res.Error
}
