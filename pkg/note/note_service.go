package note

import (
	"FoodExpiryTracker/domain"
	"FoodExpiryTracker/entities"
	"context"

	"github.com/google/uuid"
)

type (
	NoteService interface {
		AddNote(ctx context.Context, req domain.AddNoteRequest) (*entities.Note, error)
		GetNotesByFoodID(ctx context.Context, foodID string) ([]*entities.Note, error)
	}

	noteService struct {
		noteRepository NoteRepository
	}
)

func NewNoteService(noteRepository NoteRepository) NoteService {
	return &noteService{
		noteRepository: noteRepository,
	}
}

// AddNote inserts the note and re-reads it so the caller sees every
// store-assigned field.
func (s *noteService) AddNote(ctx context.Context, req domain.AddNoteRequest) (*entities.Note, error) {
	note := &entities.Note{
		ID:          uuid.New(),
		FoodID:      req.FoodID,
		AuthorEmail: req.UserEmail,
		Text:        req.Text,
		PostedAt:    req.PostedAt,
	}

	if err := s.noteRepository.AddNote(ctx, note); err != nil {
		return nil, err
	}

	return s.noteRepository.GetNoteByID(ctx, note.ID.String())
}

func (s *noteService) GetNotesByFoodID(ctx context.Context, foodID string) ([]*entities.Note, error) {
	return s.noteRepository.GetNotesByFoodID(ctx, foodID)
}
