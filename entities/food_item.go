package entities

import (
	"time"

	"github.com/google/uuid"
)

type FoodItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Quantity   string    `json:"quantity"`
	ExpiryDate time.Time `json:"expiryDate"`
	AddedDate  time.Time `json:"addedDate"`
	OwnerEmail string    `json:"ownerEmail"`

	Timestamp
}
