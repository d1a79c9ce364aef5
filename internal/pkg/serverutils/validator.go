package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest runs struct validation on an already-parsed request body.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request")
		}
		first := validationErrors[0]
		msg := fmt.Sprintf("Field '%s' failed on '%s' validation", first.Field(), first.Tag())
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}
	return nil
}
