package handler

import (
	"errors"

	"github.com/Hypereqqq/backend-good-game-vr/internal/booking/dto"
	"github.com/Hypereqqq/backend-good-game-vr/internal/booking/service"
	apperrors "github.com/Hypereqqq/backend-good-game-vr/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type ReservationHandler struct {
	reservationService *service.ReservationService
	configService      *service.AppConfigService
}

func NewReservationHandler(reservationService *service.ReservationService, configService *service.AppConfigService) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
		configService:      configService,
	}
}

func (h *ReservationHandler) List(c *fiber.Ctx) error {
	reservations, err := h.reservationService.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(reservations)
}

func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	var input dto.ReservationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	reservation, err := h.reservationService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, apperrors.ErrReservationConflict) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(reservation)
}

func (h *ReservationHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid reservation id"})
	}

	var input dto.ReservationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	reservation, err := h.reservationService.Update(c.Context(), id, input)
	if err != nil {
		if errors.Is(err, apperrors.ErrReservationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(reservation)
}

func (h *ReservationHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid reservation id"})
	}

	if err := h.reservationService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrReservationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ReservationHandler) GetConfig(c *fiber.Ctx) error {
	configs, err := h.configService.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(configs)
}

func (h *ReservationHandler) UpdateConfig(c *fiber.Ctx) error {
	var input dto.AppConfigInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	cfg, err := h.configService.Update(c.Context(), input)
	if err != nil {
		if errors.Is(err, apperrors.ErrConfigNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(cfg)
}
