package domain

import (
	"errors"
)

var (
	MessageSuccessFlagDonation = "item offered for donation"
	MessageSuccessClaim        = "donation claimed successfully"
	MessageSuccessBrowse       = "feed retrieved successfully"

	MessageFailedFlagDonation = "failed to offer item for donation"
	MessageFailedClaim        = "failed to claim donation"
	MessageFailedBrowse       = "failed to retrieve feed"

	ErrItemNotDonation        = errors.New("item is not available for claim")
	ErrSelfClaim              = errors.New("you cannot claim your own item")
	ErrDonationAlreadyClaimed = errors.New("donation was already claimed")
	ErrDonationDetailsMissing = errors.New("pickup location and availability are required")
)

type (
	FlagDonationRequest struct {
		PickupLocation string `json:"pickup_location" validate:"required"`
		Availability   string `json:"availability" validate:"required"`
	}

	// BrowseItem is one row of the shared feed: the requester's own
	// inventory plus every donation-flagged item in the system.
	BrowseItem struct {
		ItemResponse
		DisplayType string `json:"display_type"` // Inventory or Donation
		OwnerName   string `json:"owner_name"`
	}
)
