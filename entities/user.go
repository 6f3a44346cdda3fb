package entities

import (
	"time"

	"github.com/google/uuid"
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName      string    `json:"full_name"`
	Email         string    `gorm:"uniqueIndex" json:"email"`
	Password      string    `json:"-"`
	HouseholdSize int       `gorm:"default:1" json:"household_size"`
	Enable2FA     bool      `json:"enable_2fa"`
	Visibility    string    `gorm:"default:'private'" json:"visibility"` // public or private

	Timestamp
}
