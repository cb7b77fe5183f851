package entities

import (
	"github.com/google/uuid"
)

type Tip struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title  string    `json:"title"`
	Body   string    `gorm:"type:text" json:"body"`
	Author string    `json:"author,omitempty"`

	Timestamp
}
