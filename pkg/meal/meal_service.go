package meal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"saveplate/domain"
	"saveplate/entities"
)

type (
	MealService interface {
		SavePlan(ctx context.Context, req domain.SaveMealRequest, userID string) (domain.MealResponse, error)
		GetMeals(ctx context.Context, userID string) ([]domain.MealResponse, error)
		DeleteMeal(ctx context.Context, id string, userID string) error
		Cook(ctx context.Context, id string, userID string) (domain.CookMealResponse, error)
	}

	mealService struct {
		mealRepository MealRepository
	}
)

func NewMealService(mealRepository MealRepository) MealService {
	return &mealService{mealRepository: mealRepository}
}

func toMealResponse(meal *entities.Meal) domain.MealResponse {
	ingredients := make([]string, 0, len(meal.Ingredients))
	for _, ing := range meal.Ingredients {
		ingredients = append(ingredients, ing.Name)
	}
	return domain.MealResponse{
		ID:          meal.ID.String(),
		Day:         meal.Day,
		Slot:        meal.Slot,
		DishName:    meal.DishName,
		Ingredients: ingredients,
	}
}

func (s *mealService) SavePlan(ctx context.Context, req domain.SaveMealRequest, userID string) (domain.MealResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MealResponse{}, domain.ErrParseUUID
	}

	mealID := uuid.New()
	meal := &entities.Meal{
		ID:       mealID,
		UserID:   userUUID,
		Day:      req.Day,
		Slot:     req.Slot,
		DishName: req.DishName,
	}

	// Resolve ingredient names to item ids now; a stale id is repaired at
	// cook time by re-matching the name.
	for i, name := range req.Ingredients {
		ingredient := &entities.MealIngredient{
			ID:       uuid.New(),
			MealID:   mealID,
			Position: i,
			Name:     name,
		}
		if item, err := s.mealRepository.FindItemByName(ctx, userID, name); err == nil {
			itemID := item.ID
			ingredient.ItemID = &itemID
		}
		meal.Ingredients = append(meal.Ingredients, ingredient)
	}

	if err := s.mealRepository.SavePlan(ctx, meal); err != nil {
		return domain.MealResponse{}, err
	}

	return toMealResponse(meal), nil
}

func (s *mealService) GetMeals(ctx context.Context, userID string) ([]domain.MealResponse, error) {
	meals, err := s.mealRepository.GetMeals(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MealResponse, 0, len(meals))
	for _, meal := range meals {
		response = append(response, toMealResponse(meal))
	}

	return response, nil
}

func (s *mealService) DeleteMeal(ctx context.Context, id string, userID string) error {
	meal, err := s.mealRepository.GetMealByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealNotFound
		}
		return err
	}

	if meal.UserID.String() != userID {
		return domain.ErrUnauthorizedMealAccess
	}

	return s.mealRepository.DeleteMeal(ctx, id)
}

// Cook walks the ingredient list in order and depletes matching inventory by
// one unit each. Earlier depletions are not rolled back when a later
// ingredient fails; each ingredient is its own unit of work.
func (s *mealService) Cook(ctx context.Context, id string, userID string) (domain.CookMealResponse, error) {
	meal, err := s.mealRepository.GetMealByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CookMealResponse{}, domain.ErrMealNotFound
		}
		return domain.CookMealResponse{}, err
	}

	if meal.UserID.String() != userID {
		return domain.CookMealResponse{}, domain.ErrUnauthorizedMealAccess
	}

	updates := make([]string, 0, len(meal.Ingredients))

	for _, ingredient := range meal.Ingredients {
		item := s.resolveIngredient(ctx, ingredient, userID)
		if item == nil {
			updates = append(updates, fmt.Sprintf("%s not found in inventory (skipped)", ingredient.Name))
			continue
		}

		logEntry := &entities.ActivityLog{
			ID:         uuid.New(),
			UserID:     item.UserID,
			ActionType: domain.ActionUsed,
			ItemName:   item.Name,
			Quantity:   1,
			Category:   item.Category,
		}

		deleted, err := s.mealRepository.DepleteItem(ctx, item, logEntry)
		if err != nil {
			return domain.CookMealResponse{}, err
		}

		if deleted {
			updates = append(updates, fmt.Sprintf("Used up %s", item.Name))
		} else {
			updates = append(updates, fmt.Sprintf("Decreased %s to %d", item.Name, item.Quantity))
		}
	}

	return domain.CookMealResponse{Updates: updates}, nil
}

// resolveIngredient prefers the item id stored at plan-save time and falls
// back to a name match when that id no longer points at the user's item.
func (s *mealService) resolveIngredient(ctx context.Context, ingredient *entities.MealIngredient, userID string) *entities.Item {
	if ingredient.ItemID != nil {
		if item, err := s.mealRepository.GetItemByID(ctx, ingredient.ItemID.String()); err == nil {
			if item.UserID.String() == userID {
				return item
			}
		}
	}

	if item, err := s.mealRepository.FindItemByName(ctx, userID, ingredient.Name); err == nil {
		return item
	}

	return nil
}
