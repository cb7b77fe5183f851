package entities

import (
	"github.com/google/uuid"
)

// Notes are append-only; there is no edit or delete lifecycle.
type Note struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodID      string    `json:"foodId"`
	AuthorEmail string    `json:"userEmail"`
	Text        string    `gorm:"type:text" json:"text"`
	PostedAt    string    `json:"postedAt"`

	Timestamp
}
