package handlers

import (
	"FoodExpiryTracker/domain"
	"FoodExpiryTracker/internal/api/presenters"
	"FoodExpiryTracker/pkg/reference"

	"github.com/gofiber/fiber/v2"
)

type (
	ReferenceHandler interface {
		GetTips(c *fiber.Ctx) error
		GetExpiryLabels(c *fiber.Ctx) error
	}

	referenceHandler struct {
		referenceService reference.ReferenceService
	}
)

func NewReferenceHandler(referenceService reference.ReferenceService) ReferenceHandler {
	return &referenceHandler{
		referenceService: referenceService,
	}
}

func (h *referenceHandler) GetTips(c *fiber.Ctx) error {
	tips, err := h.referenceService.GetTips(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetTips, err)
	}

	return c.JSON(tips)
}

func (h *referenceHandler) GetExpiryLabels(c *fiber.Ctx) error {
	labels, err := h.referenceService.GetExpiryLabels(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetExpiryLabels, err)
	}

	return c.JSON(labels)
}
