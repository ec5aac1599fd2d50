package handler

import (
	"errors"

	"github.com/Hypereqqq/backend-good-game-vr/internal/booking/dto"
	"github.com/Hypereqqq/backend-good-game-vr/internal/booking/service"
	apperrors "github.com/Hypereqqq/backend-good-game-vr/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login answers 200 with a user projection, 401 for unknown user or wrong
// password (one collapsed message), 429 when the client is throttled, 500
// when the store is unreachable.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	input.IPAddress = c.IP()

	user, err := h.authService.Login(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTooManyLoginAttempts):
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": apperrors.ErrTooManyLoginAttempts.Error(),
			})
		case errors.Is(err, apperrors.ErrStoreUnavailable):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": apperrors.ErrStoreUnavailable.Error(),
			})
		default:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": apperrors.ErrInvalidCredentials.Error(),
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(dto.LoginResponse{
		Success: true,
		User:    user,
	})
}
