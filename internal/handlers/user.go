package handlers

import (
	"kobo/internal/models"
	"kobo/internal/services/user"
	"kobo/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterUser creates a new account with its wallet.
func (h *UserHandler) RegisterUser(c *fiber.Ctx) error {
	var input models.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Email and password are required")
	}

	created, wallet, err := h.userService.Register(c.Context(), &input)
	if err != nil {
		return domainError(c, err)
	}

	return utils.Created(c, "Account created successfully", fiber.Map{
		"user":   created,
		"wallet": wallet,
	})
}

// GetProfile returns the authenticated user with their wallet id.
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	u, err := h.userService.GetByID(claims.UserID)
	if err != nil {
		return domainError(c, err)
	}

	return utils.Success(c, "Profile retrieved successfully", fiber.Map{
		"user": u,
	})
}
