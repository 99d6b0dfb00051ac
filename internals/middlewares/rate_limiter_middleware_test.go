package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hit(t *testing.T, app *fiber.App) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func TestLoginRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Post("/login", LoginRateLimiter(true), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for i := 0; i < 5; i++ {
		require.Equal(t, fiber.StatusOK, hit(t, app), "request %d", i+1)
	}
	assert.Equal(t, fiber.StatusTooManyRequests, hit(t, app))
}

func TestRateLimiterDisabled(t *testing.T) {
	app := fiber.New()
	app.Post("/login", LoginRateLimiter(false), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for i := 0; i < 20; i++ {
		require.Equal(t, fiber.StatusOK, hit(t, app), "disabled limiter must pass everything")
	}
}
