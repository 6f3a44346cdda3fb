package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"saveplate/domain"
	"saveplate/internal/api/presenters"
	"saveplate/pkg/meal"
)

type (
	MealHandler interface {
		GetMeals(c *fiber.Ctx) error
		SaveMeal(c *fiber.Ctx) error
		DeleteMeal(c *fiber.Ctx) error
		CookMeal(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		validator   *validator.Validate
	}
)

func NewMealHandler(mealService meal.MealService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealService: mealService,
		validator:   validator,
	}
}

func mealErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrMealNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedMealAccess):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *mealHandler) GetMeals(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	meals, err := h.mealService.GetMeals(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, mealErrorStatus(err), domain.MessageFailedGetMeals, err)
	}

	return presenters.SuccessResponse(c, meals, fiber.StatusOK, domain.MessageSuccessGetMeals)
}

func (h *mealHandler) SaveMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveMeal, err)
	}

	res, err := h.mealService.SavePlan(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, mealErrorStatus(err), domain.MessageFailedSaveMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveMeal)
}

func (h *mealHandler) DeleteMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	mealID := c.Params("id")

	if err := h.mealService.DeleteMeal(c.Context(), mealID, userID); err != nil {
		return presenters.ErrorResponse(c, mealErrorStatus(err), domain.MessageFailedDeleteMeal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMeal)
}

func (h *mealHandler) CookMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	mealID := c.Params("id")

	res, err := h.mealService.Cook(c.Context(), mealID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, mealErrorStatus(err), domain.MessageFailedCookMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCookMeal)
}
