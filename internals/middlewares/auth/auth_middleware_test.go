package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academia_backend/internals/constants"
	helper "academia_backend/internals/helpers"
	"academia_backend/internals/sessions"
)

// newGuardedApp exposes /login/:role to seed a session and /secret behind the guards.
func newGuardedApp() *fiber.App {
	store := session.New(session.Config{KeyLookup: "cookie:connect.sid"})
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})

	app.Post("/login/:role", func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return err
		}
		sess.Set(sessions.KeyUserID, uint(7))
		sess.Set(sessions.KeyRole, c.Params("role"))
		return sess.Save()
	})

	app.Get("/me", SessionAuth(store), func(c *fiber.Ctx) error {
		id, err := UserIDFromLocals(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"id": id})
	})

	app.Get("/secret",
		SessionAuth(store),
		OnlyRoles(constants.RoleErrorTeacher("esta área"), constants.TeacherOnly...),
		func(c *fiber.Ctx) error { return c.SendString("ok") },
	)
	return app
}

func sessionCookie(t *testing.T, resp *http.Response) string {
	t.Helper()
	for _, ck := range resp.Cookies() {
		if ck.Name == "connect.sid" {
			return ck.Name + "=" + ck.Value
		}
	}
	require.FailNow(t, "no session cookie set")
	return ""
}

func do(t *testing.T, app *fiber.App, method, path, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSessionAuthRejectsMissingSession(t *testing.T) {
	app := newGuardedApp()
	assert.Equal(t, fiber.StatusUnauthorized, do(t, app, "GET", "/me", "").StatusCode)
}

func TestSessionAuthExposesUserID(t *testing.T) {
	app := newGuardedApp()
	cookie := sessionCookie(t, do(t, app, "POST", "/login/student", ""))

	resp := do(t, app, "GET", "/me", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Cookies(), "sliding expiry should re-issue the cookie")
}

func TestOnlyRolesForbidsStudents(t *testing.T) {
	app := newGuardedApp()
	cookie := sessionCookie(t, do(t, app, "POST", "/login/student", ""))

	assert.Equal(t, fiber.StatusForbidden, do(t, app, "GET", "/secret", cookie).StatusCode)
}

func TestOnlyRolesAllowsTeachers(t *testing.T) {
	app := newGuardedApp()
	cookie := sessionCookie(t, do(t, app, "POST", "/login/teacher", ""))

	assert.Equal(t, fiber.StatusOK, do(t, app, "GET", "/secret", cookie).StatusCode)
}

func TestOnlyRolesWithoutSessionAuth(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Get("/", OnlyRoles("", constants.RoleTeacher), func(c *fiber.Ctx) error { return nil })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
