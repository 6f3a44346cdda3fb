package entities

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog is append-only: rows are never updated or deleted, so the
// category and quantity snapshots stay valid even after the item is gone.
type ActivityLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	ActionType string    `json:"action_type"` // USED or DONATED
	ItemName   string    `json:"item_name"`
	Quantity   int       `json:"quantity"`
	Category   string    `gorm:"default:'Uncategorized'" json:"category"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}
