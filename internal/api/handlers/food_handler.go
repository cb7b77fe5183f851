package handlers

import (
	"FoodExpiryTracker/domain"
	"FoodExpiryTracker/internal/api/presenters"
	"FoodExpiryTracker/pkg/food"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AddFoodItem(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		UpdateFoodItem(c *fiber.Ctx) error
		DeleteFoodItem(c *fiber.Ctx) error
		GetFoodItemByID(c *fiber.Ctx) error
		GetNearlyExpiredItems(c *fiber.Ctx) error
		GetExpiredItems(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) AddFoodItem(c *fiber.Ctx) error {
	req := new(domain.AddFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	foodItem, err := h.foodService.AddFoodItem(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidExpiryDate) || errors.Is(err, domain.ErrInvalidAddedDate) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddFoodItem, err)
	}

	return c.Status(fiber.StatusCreated).JSON(foodItem)
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	email := c.Query("email")

	foodItems, err := h.foodService.GetFoodItems(c.Context(), email)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodItems, err)
	}

	return c.JSON(foodItems)
}

func (h *foodHandler) UpdateFoodItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.UpdateFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
	}

	if err := h.foodService.UpdateFoodItem(c.Context(), itemID, *req); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidExpiryDate):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
		case errors.Is(err, domain.ErrFoodItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFoodItemNotUpdated, nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateFoodItem, err)
		}
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *foodHandler) DeleteFoodItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	deletedCount, err := h.foodService.DeleteFoodItem(c.Context(), itemID)
	if err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFoodItemNotFound, nil)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteFoodItem, err)
	}

	return c.JSON(fiber.Map{"deletedCount": deletedCount})
}

func (h *foodHandler) GetFoodItemByID(c *fiber.Ctx) error {
	itemID := c.Params("id")

	foodItem, err := h.foodService.GetFoodItemByID(c.Context(), itemID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidFoodItemID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidFoodItemID, nil)
		case errors.Is(err, domain.ErrFoodItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFoodItemNotFound, nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodItems, err)
		}
	}

	return c.JSON(foodItem)
}

func (h *foodHandler) GetNearlyExpiredItems(c *fiber.Ctx) error {
	foodItems, err := h.foodService.GetNearlyExpiredItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodItems, err)
	}

	return c.JSON(foodItems)
}

func (h *foodHandler) GetExpiredItems(c *fiber.Ctx) error {
	foodItems, err := h.foodService.GetExpiredItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodItems, err)
	}

	return c.JSON(foodItems)
}
