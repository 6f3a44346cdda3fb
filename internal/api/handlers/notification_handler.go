package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"saveplate/domain"
	"saveplate/internal/api/presenters"
	"saveplate/pkg/notification"
)

type (
	NotificationHandler interface {
		GetNotifications(c *fiber.Ctx) error
		MarkRead(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
	}
)

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandler{notificationService: notificationService}
}

func notificationErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotificationNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedNotificationAccess):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *notificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	notifications, err := h.notificationService.GetNotifications(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, notificationErrorStatus(err), domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, notifications, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) MarkRead(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	notificationID := c.Params("id")

	res, err := h.notificationService.MarkRead(c.Context(), notificationID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, notificationErrorStatus(err), domain.MessageFailedMarkRead, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessMarkRead)
}
