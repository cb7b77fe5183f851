package handlers

import (
	"FoodExpiryTracker/domain"
	"FoodExpiryTracker/internal/api/presenters"
	"FoodExpiryTracker/pkg/note"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NoteHandler interface {
		AddNote(c *fiber.Ctx) error
		GetNotesByFoodID(c *fiber.Ctx) error
	}

	noteHandler struct {
		noteService note.NoteService
		validator   *validator.Validate
	}
)

func NewNoteHandler(noteService note.NoteService, validator *validator.Validate) NoteHandler {
	return &noteHandler{
		noteService: noteService,
		validator:   validator,
	}
}

func (h *noteHandler) AddNote(c *fiber.Ctx) error {
	req := new(domain.AddNoteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageNoteMissingField, nil)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageNoteMissingField, nil)
	}

	inserted, err := h.noteService.AddNote(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddNote, err)
	}

	return c.JSON(inserted)
}

func (h *noteHandler) GetNotesByFoodID(c *fiber.Ctx) error {
	foodID := c.Params("foodId")

	notes, err := h.noteService.GetNotesByFoodID(c.Context(), foodID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetNotes, err)
	}

	return c.JSON(notes)
}
