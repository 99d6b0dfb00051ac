package configs

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// Config holds every process-wide setting injected at startup.
type Config struct {
	Port string

	// database
	DBDriver   string // postgres | sqlite
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string
	SQLiteDSN  string
	DBLogLevel string

	// session
	SessionSecret          string
	SessionCookieName      string
	SessionCookieSecure    bool
	SessionCookieHTTPOnly  bool
	SessionCookieSameSite  string
	SessionMaxAge          time.Duration
	SessionStore           string // memory | database | redis
	SessionCleanupInterval time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	BcryptCost       int
	RateLimitEnabled bool
	CORSAllowOrigins string

	RunSeeds bool
	SeedDir  string
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env not found, using system environment")
		} else {
			log.Println("✅ .env loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system environment")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// Load reads the environment into a Config, applying defaults for anything unset.
func Load() *Config {
	cfg := &Config{
		Port: GetEnv("PORT", "3000"),

		DBDriver:   strings.ToLower(GetEnv("DB_DRIVER", "postgres")),
		DBUser:     GetEnv("DB_USER"),
		DBPassword: GetEnv("DB_PASSWORD"),
		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBName:     GetEnv("DB_NAME"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "disable"),
		SQLiteDSN:  GetEnv("SQLITE_DSN", "file:academia.db?_foreign_keys=on"),
		DBLogLevel: strings.ToLower(GetEnv("DB_LOG_LEVEL", "warn")),

		SessionSecret:          GetEnv("SESSION_SECRET"),
		SessionCookieName:      GetEnv("SESSION_COOKIE_NAME", "connect.sid"),
		SessionCookieSecure:    getBool("SESSION_COOKIE_SECURE", false),
		SessionCookieHTTPOnly:  getBool("SESSION_COOKIE_HTTP_ONLY", true),
		SessionCookieSameSite:  GetEnv("SESSION_COOKIE_SAMESITE", "Lax"),
		SessionMaxAge:          getDuration("SESSION_MAX_AGE", 24*time.Hour),
		SessionStore:           strings.ToLower(GetEnv("SESSION_STORE", "memory")),
		SessionCleanupInterval: getDuration("SESSION_CLEANUP_INTERVAL", time.Hour),

		RedisAddr:     GetEnv("REDIS_ADDR"),
		RedisPassword: GetEnv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),

		BcryptCost:       getInt("BCRYPT_COST", 10),
		RateLimitEnabled: getBool("RATE_LIMIT_ENABLED", true),
		CORSAllowOrigins: GetEnv("CORS_ALLOW_ORIGINS", "*"),

		RunSeeds: getBool("RUN_SEEDS", false),
		SeedDir:  GetEnv("SEED_DIR", "internals/seeds/data"),
	}

	if cfg.SessionSecret == "" {
		log.Println("❌ SESSION_SECRET not set, a random cookie key will be generated")
	}
	return cfg
}

func getBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("⚠️ invalid %s=%q, using %v", key, raw, def)
		return def
	}
	return v
}

func getInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("⚠️ invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("⚠️ invalid %s=%q, using %s", key, raw, def)
		return def
	}
	return v
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger(level string) gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      ParseGormLogLevel(level),
	}
}

func ParseGormLogLevel(level string) gormLogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormLogger.Silent
	case "error":
		return gormLogger.Error
	case "info":
		return gormLogger.Info
	default:
		return gormLogger.Warn
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	nl := *l
	nl.LogLevel = level
	return &nl
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	file := utils.FileWithLineNum()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.LogLevel >= gormLogger.Error:
		sql, rows := fc()
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		sql, rows := fc()
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		sql, rows := fc()
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
