package helper

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateStruct runs struct validation outside a request, for services.
func ValidateStruct(v any, message string) error {
	if err := validate.Struct(v); err != nil {
		log.Printf("[DEBUG] validation failed: %v", FieldErrors(err))
		return fiber.NewError(fiber.StatusBadRequest, message)
	}
	return nil
}

// BodyParse decodes the body only; validation is left to the service.
func BodyParse(c *fiber.Ctx, dst any, message string) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, message)
	}
	return nil
}

// FieldErrors flattens validator errors into field -> failed tag.
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.Field()] = fe.Tag()
		}
	}
	return out
}
