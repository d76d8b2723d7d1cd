package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/AlvaroDC2000/dealership-api/internal/models"
)

// respondError maps a service error to its HTTP response. Unknown errors are
// logged with their cause and rendered as a generic 500 so internals never
// leak to the client.
func respondError(c *fiber.Ctx, err error) error {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": verr.Message,
		})
	case errors.Is(err, models.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	case errors.Is(err, models.ErrUsernameTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Username already exists",
		})
	default:
		log.Printf("Unhandled error for %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
}

// firstValidationMessage converts the first struct validation failure into
// the client-facing message for that field. Fields are reported in struct
// declaration order, which fixes the first-failure-wins ordering.
func firstValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "DealershipID":
			return "Dealership is required"
		case "RoleID":
			return "Role is required"
		case "Username":
			return "Username is required"
		case "Password":
			return "Password is required"
		case "FullName":
			return "Full name is required"
		}
		return fmt.Sprintf("%s is invalid", verrs[0].Field())
	}
	return "Validation failed"
}
