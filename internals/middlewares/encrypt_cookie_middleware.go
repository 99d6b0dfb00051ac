package middlewares

import (
	"crypto/sha256"
	"encoding/base64"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
)

// CookieKey turns SESSION_SECRET into an AES key for encryptcookie. A secret that
// already is a base64 16/24/32-byte key is used as is; any other secret is
// stretched with SHA-256. An empty secret yields a random per-process key.
func CookieKey(secret string) string {
	if secret == "" {
		return encryptcookie.GenerateKey()
	}
	if raw, err := base64.StdEncoding.DecodeString(secret); err == nil {
		switch len(raw) {
		case 16, 24, 32:
			return secret
		}
	}
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// EncryptCookieMiddleware encrypts every cookie value, the session id included.
func EncryptCookieMiddleware(secret string) fiber.Handler {
	if secret == "" {
		log.Println("⚠️ cookie key generated at startup, sessions will not survive a restart")
	}
	return encryptcookie.New(encryptcookie.Config{
		Key: CookieKey(secret),
	})
}
