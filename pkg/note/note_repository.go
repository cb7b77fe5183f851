package note

import (
	"FoodExpiryTracker/entities"
	"context"

	"gorm.io/gorm"
)

type (
	NoteRepository interface {
		AddNote(ctx context.Context, note *entities.Note) error
		GetNoteByID(ctx context.Context, id string) (*entities.Note, error)
		GetNotesByFoodID(ctx context.Context, foodID string) ([]*entities.Note, error)
	}

	noteRepository struct {
		db *gorm.DB
	}
)

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) AddNote(ctx context.Context, note *entities.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepository) GetNoteByID(ctx context.Context, id string) (*entities.Note, error) {
	var note entities.Note
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) GetNotesByFoodID(ctx context.Context, foodID string) ([]*entities.Note, error) {
	notes := make([]*entities.Note, 0)
	if err := r.db.WithContext(ctx).Where("food_id = ?", foodID).Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}
