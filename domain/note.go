package domain

import (
	"errors"
)

var (
	MessageFailedGetNotes   = "Failed to load notes"
	MessageFailedAddNote    = "Failed to post note"
	MessageNoteMissingField = "Missing required fields"

	ErrNoteNotFound = errors.New("note not found")
)

type AddNoteRequest struct {
	Text      string `json:"text" validate:"required"`
	FoodID    string `json:"foodId" validate:"required"`
	UserEmail string `json:"userEmail" validate:"required"`
	PostedAt  string `json:"postedAt" validate:"required"`
}
