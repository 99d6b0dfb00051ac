package sessions

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"academia_backend/internals/configs"
)

// Keys stored in the session map.
const (
	KeyUserID = "user_id"
	KeyRole   = "role"
)

// NewStorage picks the fiber.Storage backing sessions. A nil storage means
// Fiber's in-process memory storage.
func NewStorage(cfg *configs.Config, db *gorm.DB) (fiber.Storage, error) {
	switch cfg.SessionStore {
	case "", "memory":
		return nil, nil
	case "database", "db":
		if db == nil {
			return nil, fmt.Errorf("session store %q needs a database", cfg.SessionStore)
		}
		return NewGormStorage(db), nil
	case "redis":
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("session store redis needs REDIS_ADDR")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis ping failed: %w", err)
		}
		return NewRedisStorage(client, ""), nil
	default:
		return nil, fmt.Errorf("unknown SESSION_STORE %q", cfg.SessionStore)
	}
}

// NewStore builds the session store used by auth controllers and middleware.
func NewStore(cfg *configs.Config, db *gorm.DB) (*session.Store, error) {
	storage, err := NewStorage(cfg, db)
	if err != nil {
		return nil, err
	}

	store := session.New(session.Config{
		Expiration:     cfg.SessionMaxAge,
		Storage:        storage,
		KeyLookup:      "cookie:" + cfg.SessionCookieName,
		CookiePath:     "/",
		CookieSecure:   cfg.SessionCookieSecure,
		CookieHTTPOnly: cfg.SessionCookieHTTPOnly,
		CookieSameSite: cfg.SessionCookieSameSite,
		KeyGenerator:   uuid.NewString,
	})
	log.Printf("✅ Session store ready (%s, max-age %s)", storeName(cfg.SessionStore), cfg.SessionMaxAge)
	return store, nil
}

func storeName(s string) string {
	if s == "" {
		return "memory"
	}
	return s
}

// UserID returns the authenticated user id held by sess.
func UserID(sess *session.Session) (uint, bool) {
	id, ok := sess.Get(KeyUserID).(uint)
	return id, ok && id != 0
}

// Role returns the role stored at login.
func Role(sess *session.Session) string {
	role, _ := sess.Get(KeyRole).(string)
	return role
}
