package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/AlvaroDC2000/dealership-api/internal/models"
	"github.com/AlvaroDC2000/dealership-api/internal/repositories"
	"github.com/AlvaroDC2000/dealership-api/internal/services"
)

// OwnerHandler handles owner-level user management and reference data.
type OwnerHandler struct {
	userService *services.UserService
	validate    *validator.Validate
}

// NewOwnerHandler creates a new OwnerHandler.
func NewOwnerHandler(userService *services.UserService) *OwnerHandler {
	return &OwnerHandler{
		userService: userService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the owner management routes with the Fiber app.
func (h *OwnerHandler) RegisterRoutes(router fiber.Router) {
	ownerRoutes := router.Group("/owner")
	ownerRoutes.Get("/roles", h.HandleGetRoles)
	ownerRoutes.Get("/dealerships", h.HandleGetDealerships)
	ownerRoutes.Get("/users", h.HandleListUsers)
	ownerRoutes.Post("/users", h.HandleCreateUser)
}

// HandleGetRoles returns the role reference data.
func (h *OwnerHandler) HandleGetRoles(c *fiber.Ctx) error {
	roles, err := h.userService.Roles()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(roles)
}

// HandleGetDealerships returns the dealership reference data.
func (h *OwnerHandler) HandleGetDealerships(c *fiber.Ctx) error {
	dealerships, err := h.userService.Dealerships()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dealerships)
}

// HandleListUsers returns the employee accounts, optionally filtered by
// dealershipId, roleId, and active query parameters.
func (h *OwnerHandler) HandleListUsers(c *fiber.Ctx) error {
	var filter repositories.UserFilter

	if v := c.Query("dealershipId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "dealershipId must be a number",
			})
		}
		filter.DealershipID = &id
	}
	if v := c.Query("roleId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "roleId must be a number",
			})
		}
		filter.RoleID = &id
	}
	if v := c.Query("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "active must be true or false",
			})
		}
		filter.Active = &active
	}

	users, err := h.userService.ListUsers(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// HandleCreateUser creates a new employee account and returns its generated
// identifier.
func (h *OwnerHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": firstValidationMessage(err),
		})
	}

	id, err := h.userService.CreateUser(&req)
	if err != nil {
		return respondError(c, err)
	}

	// Return JSON (not plain text) so the frontend can always parse the
	// response body.
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": "User created successfully",
	})
}
