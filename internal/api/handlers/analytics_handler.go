package handlers

import (
	"github.com/gofiber/fiber/v2"

	"saveplate/domain"
	"saveplate/internal/api/presenters"
	"saveplate/pkg/analytics"
)

type (
	AnalyticsHandler interface {
		GetAnalytics(c *fiber.Ctx) error
	}

	analyticsHandler struct {
		analyticsService analytics.AnalyticsService
	}
)

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandler{analyticsService: analyticsService}
}

func (h *analyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	summary, err := h.analyticsService.Summarize(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetAnalytics, err)
	}

	return presenters.SuccessResponse(c, summary, fiber.StatusOK, domain.MessageSuccessGetAnalytics)
}
