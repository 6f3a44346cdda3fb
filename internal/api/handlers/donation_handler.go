package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"saveplate/domain"
	"saveplate/internal/api/presenters"
	"saveplate/pkg/donation"
)

type (
	DonationHandler interface {
		FlagDonation(c *fiber.Ctx) error
		Claim(c *fiber.Ctx) error
		BrowseFeed(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

func donationErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedItemAccess):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrDonationAlreadyClaimed):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrItemNotDonation),
		errors.Is(err, domain.ErrSelfClaim),
		errors.Is(err, domain.ErrDonationDetailsMissing),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *donationHandler) FlagDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.FlagDonationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFlagDonation, err)
	}

	res, err := h.donationService.FlagDonation(c.Context(), itemID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, donationErrorStatus(err), domain.MessageFailedFlagDonation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessFlagDonation)
}

func (h *donationHandler) Claim(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	res, err := h.donationService.Claim(c.Context(), itemID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, donationErrorStatus(err), domain.MessageFailedClaim, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessClaim)
}

func (h *donationHandler) BrowseFeed(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	feed, err := h.donationService.BrowseFeed(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, donationErrorStatus(err), domain.MessageFailedBrowse, err)
	}

	return presenters.SuccessResponse(c, feed, fiber.StatusOK, domain.MessageSuccessBrowse)
}
