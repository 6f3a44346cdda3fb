package entities

import (
	"time"

	"github.com/google/uuid"
)

type Item struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	Quantity        int       `json:"quantity"`
	ExpiryDate      time.Time `json:"expiry_date"`
	Category        string    `json:"category"` // Canned, Frozen, Fresh, Dry, Other
	StorageLocation string    `json:"storage_location,omitempty"`
	IsDonation      bool      `gorm:"default:false" json:"is_donation"`
	PickupLocation  string    `json:"pickup_location,omitempty"`
	Availability    string    `json:"availability,omitempty"` // e.g. "Weekdays 9-5"
	ImageURL        string    `json:"image_url,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
