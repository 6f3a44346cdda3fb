package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var ItemCategories = []string{"Canned", "Frozen", "Fresh", "Dry", "Other"}

var (
	MessageSuccessAddItem         = "item added successfully"
	MessageSuccessUpdateItem      = "item updated successfully"
	MessageSuccessMarkUsed        = "item removed and logged as used"
	MessageSuccessGetItems        = "items retrieved successfully"
	MessageSuccessUploadItemImage = "item image uploaded successfully"

	MessageFailedAddItem         = "failed to add item"
	MessageFailedUpdateItem      = "failed to update item"
	MessageFailedMarkUsed        = "failed to mark item as used"
	MessageFailedGetItems        = "failed to retrieve items"
	MessageFailedUploadItemImage = "failed to upload item image"

	ErrItemNotFound           = errors.New("item not found")
	ErrInvalidExpiryDate      = errors.New("invalid expiry date")
	ErrInvalidQuantity        = errors.New("quantity must not be negative")
	ErrInvalidCategory        = errors.New("category must be one of Canned, Frozen, Fresh, Dry, Other")
	ErrUnauthorizedItemAccess = errors.New("unauthorized access to item")
)

type (
	AddItemRequest struct {
		Name            string `json:"name" validate:"required"`
		Quantity        int    `json:"quantity" validate:"min=0"`
		ExpiryDate      string `json:"expiry_date" validate:"required"`
		Category        string `json:"category" validate:"required,oneof=Canned Frozen Fresh Dry Other"`
		StorageLocation string `json:"storage_location" validate:"omitempty"`
	}

	UpdateItemRequest struct {
		Name            string `json:"name" validate:"omitempty"`
		Quantity        *int   `json:"quantity" validate:"omitempty,min=0"`
		ExpiryDate      string `json:"expiry_date" validate:"omitempty"`
		Category        string `json:"category" validate:"omitempty,oneof=Canned Frozen Fresh Dry Other"`
		StorageLocation string `json:"storage_location" validate:"omitempty"`
	}

	UploadItemImageRequest struct {
		ItemID string                `json:"item_id" form:"item_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	ItemResponse struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		Quantity        int       `json:"quantity"`
		ExpiryDate      time.Time `json:"expiry_date"`
		Category        string    `json:"category"`
		StorageLocation string    `json:"storage_location,omitempty"`
		IsDonation      bool      `json:"is_donation"`
		PickupLocation  string    `json:"pickup_location,omitempty"`
		Availability    string    `json:"availability,omitempty"`
		ImageURL        string    `json:"image_url,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
	}
)
