// file: internals/helpers/json_response.go
package helper

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const msgInternalError = "Erro interno do servidor."

// MessageResponse is the single shape of every error body and of
// message-only success bodies.
type MessageResponse struct {
	Message string `json:"message"`
}

// JsonError: error generic
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		if status >= fiber.StatusInternalServerError {
			message = msgInternalError
		} else {
			message = fiber.ErrBadRequest.Message
		}
	}
	return c.Status(status).JSON(MessageResponse{Message: message})
}

// JsonMessage: response sukses yang hanya membawa pesan
func JsonMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(MessageResponse{Message: message})
}

// JsonOK: 200 dengan body apa adanya
func JsonOK(c *fiber.Ctx, body any) error {
	return c.Status(fiber.StatusOK).JSON(body)
}

// JsonCreated: 201 dengan body apa adanya
func JsonCreated(c *fiber.Ctx, body any) error {
	return c.Status(fiber.StatusCreated).JSON(body)
}

// ErrorHandler is installed as fiber.Config.ErrorHandler. *fiber.Error keeps
// its code and message; anything else is logged and hidden behind a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code >= fiber.StatusInternalServerError {
			log.Printf("[ERROR] %s %s -> %d: %s", c.Method(), c.OriginalURL(), fe.Code, fe.Message)
		}
		return JsonError(c, fe.Code, fe.Message)
	}

	log.Printf("[ERROR] %s %s -> unhandled: %v", c.Method(), c.OriginalURL(), err)
	return JsonError(c, fiber.StatusInternalServerError, msgInternalError)
}

// Internal logs the underlying cause and returns an opaque 500 carrying msg.
func Internal(scope string, err error, msg string) error {
	log.Printf("[ERROR] %s: %v", scope, err)
	return fiber.NewError(fiber.StatusInternalServerError, msg)
}
