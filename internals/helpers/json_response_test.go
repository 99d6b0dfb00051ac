package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeMessage(t *testing.T, body io.Reader) string {
	t.Helper()
	var out MessageResponse
	require.NoError(t, json.NewDecoder(body).Decode(&out), "decode body")
	return out.Message
}

func TestErrorHandlerKeepsFiberErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Aluno não encontrado.")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Aluno não encontrado.", decodeMessage(t, resp.Body))
}

func TestErrorHandlerHidesUnknownErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("pq: relation \"users\" does not exist")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, msgInternalError, decodeMessage(t, resp.Body), "internal detail leaked")
}

func TestInternalWrapsAs500(t *testing.T) {
	err := Internal("test", errors.New("db down"), "Erro ao buscar exercícios.")
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusInternalServerError, fe.Code)
	assert.Equal(t, "Erro ao buscar exercícios.", fe.Message)
}

func TestJsonErrorDefaults(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return JsonError(c, 0, "")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, msgInternalError, decodeMessage(t, resp.Body))
}

func TestValidateStruct(t *testing.T) {
	type body struct {
		Name string `validate:"required"`
	}
	require.NoError(t, ValidateStruct(body{Name: "x"}, "bad"))

	var fe *fiber.Error
	require.ErrorAs(t, ValidateStruct(body{}, "bad"), &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "bad", fe.Message)
}
