package domain

import (
	"errors"
)

var (
	MessageSuccessSaveMeal   = "meal plan saved successfully"
	MessageSuccessGetMeals   = "meal plans retrieved successfully"
	MessageSuccessDeleteMeal = "meal removed"
	MessageSuccessCookMeal   = "meal cooked"

	MessageFailedSaveMeal   = "failed to save meal plan"
	MessageFailedGetMeals   = "failed to retrieve meal plans"
	MessageFailedDeleteMeal = "failed to remove meal"
	MessageFailedCookMeal   = "failed to cook meal"

	ErrMealNotFound           = errors.New("meal not found")
	ErrUnauthorizedMealAccess = errors.New("unauthorized access to meal")
)

type (
	SaveMealRequest struct {
		Day         string   `json:"day" validate:"required,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`
		Slot        string   `json:"slot" validate:"required"`
		DishName    string   `json:"dish_name" validate:"required"`
		Ingredients []string `json:"ingredients" validate:"omitempty,dive,required"`
	}

	MealResponse struct {
		ID          string   `json:"id"`
		Day         string   `json:"day"`
		Slot        string   `json:"slot"`
		DishName    string   `json:"dish_name"`
		Ingredients []string `json:"ingredients"`
	}

	CookMealResponse struct {
		Updates []string `json:"updates"`
	}
)
