package domain

import (
	"errors"
)

var (
	MessageFailedAddFoodItem    = "failed to add food item"
	MessageFailedGetFoodItems   = "failed to retrieve food items"
	MessageFailedUpdateFoodItem = "Update failed."
	MessageFailedDeleteFoodItem = "Delete failed"
	MessageFoodItemNotFound     = "Food not found"
	MessageFoodItemNotUpdated   = "No changes made or item not found."
	MessageInvalidFoodItemID    = "Invalid food ID format"

	ErrFoodItemNotFound  = errors.New("food item not found")
	ErrInvalidFoodItemID = errors.New("invalid food item id")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
	ErrInvalidAddedDate  = errors.New("invalid added date")
)

type (
	// The declared owner is stored as given rather than taken from the
	// verified caller. See DESIGN.md, open questions.
	AddFoodItemRequest struct {
		Title      string `json:"title" validate:"required"`
		Category   string `json:"category" validate:"omitempty"`
		Quantity   string `json:"quantity" validate:"omitempty"`
		ExpiryDate string `json:"expiryDate" validate:"required"`
		AddedDate  string `json:"addedDate" validate:"required"`
		OwnerEmail string `json:"ownerEmail" validate:"required"`
	}

	UpdateFoodItemRequest struct {
		Title      string `json:"title" validate:"required"`
		Category   string `json:"category" validate:"omitempty"`
		Quantity   string `json:"quantity" validate:"omitempty"`
		ExpiryDate string `json:"expiryDate" validate:"required"`
	}
)
