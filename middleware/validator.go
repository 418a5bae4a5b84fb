package middleware

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var Validate *validator.Validate

// InitValidator initializes validator and custom rules
func InitValidator() {
	Validate = validator.New()

	// Challenge ids are uuid strings issued by this service
	Validate.RegisterValidation("challengeid", func(fl validator.FieldLevel) bool {
		id := fl.Field().String()
		return len(id) == 36 && strings.Count(id, "-") == 4
	})
}

func translateValidationErrors(err validator.ValidationErrors) map[string]string {
	errorsMap := make(map[string]string)
	for _, e := range err {
		field := e.Field()
		tag := e.Tag()
		switch tag {
		case "required":
			errorsMap[field] = field + " is required"
		case "latitude":
			errorsMap[field] = field + " must be a valid latitude"
		case "longitude":
			errorsMap[field] = field + " must be a valid longitude"
		case "challengeid":
			errorsMap[field] = field + " must be a challenge id issued by this service"
		default:
			errorsMap[field] = field + " is invalid"
		}
	}
	return errorsMap
}

// ValidateBody is Fiber middleware that validates request body
func ValidateBody[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body T

		// Parse JSON into struct
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		// Validate struct
		if err := Validate.Struct(&body); err != nil {
			if errs, ok := err.(validator.ValidationErrors); ok {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"errors": translateValidationErrors(errs),
				})
			}
			// fallback for unexpected errors
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		// Store validated body in context for controller
		c.Locals("body", &body)
		return c.Next()
	}
}
