package entities

import (
	"github.com/google/uuid"
)

type Meal struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Day      string    `json:"day"`  // e.g. "Monday"
	Slot     string    `json:"slot"` // e.g. "Breakfast"
	DishName string    `json:"dish_name"`

	User        *User             `gorm:"foreignKey:UserID"`
	Ingredients []*MealIngredient `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE"`
	Timestamp
}

// MealIngredient keeps the ingredient name the user typed plus the item it
// resolved to at plan-save time. ItemID goes stale when the item is used up;
// cook re-resolves by name before giving up.
type MealIngredient struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	MealID   uuid.UUID  `json:"meal_id"`
	Position int        `json:"position"`
	Name     string     `json:"name"`
	ItemID   *uuid.UUID `json:"item_id,omitempty"`

	Meal *Meal `gorm:"foreignKey:MealID"`
	Item *Item `gorm:"foreignKey:ItemID"`
}
