package domain

import (
	"errors"
	"time"
)

const (
	NotificationTypeInventory = "INVENTORY"
	NotificationTypeDonation  = "DONATION"
	NotificationTypeMeal      = "MEAL"
)

var (
	MessageSuccessGetNotifications = "notifications retrieved successfully"
	MessageSuccessMarkRead         = "notification marked as read"

	MessageFailedGetNotifications = "failed to retrieve notifications"
	MessageFailedMarkRead         = "failed to mark notification as read"

	ErrNotificationNotFound           = errors.New("notification not found")
	ErrUnauthorizedNotificationAccess = errors.New("unauthorized access to notification")
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	RelatedID string    `json:"related_id"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
