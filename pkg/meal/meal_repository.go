package meal

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"saveplate/entities"
)

type (
	MealRepository interface {
		SavePlan(ctx context.Context, meal *entities.Meal) error
		GetMealByID(ctx context.Context, id string) (*entities.Meal, error)
		GetMeals(ctx context.Context, userID string) ([]*entities.Meal, error)
		GetMealsForDay(ctx context.Context, userID string, day string) ([]*entities.Meal, error)
		DeleteMeal(ctx context.Context, id string) error
		FindItemByName(ctx context.Context, userID string, name string) (*entities.Item, error)
		GetItemByID(ctx context.Context, id string) (*entities.Item, error)
		DepleteItem(ctx context.Context, item *entities.Item, logEntry *entities.ActivityLog) (bool, error)
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func ingredientsByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}

// SavePlan replaces whatever meal occupies the (user, day, slot) cell. The
// delete-then-insert runs in one transaction so the cell never holds two
// meals, even across concurrent saves.
func (r *mealRepository) SavePlan(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []*entities.Meal
		if err := tx.Where("user_id = ? AND day = ? AND slot = ?",
			meal.UserID, meal.Day, meal.Slot).Find(&existing).Error; err != nil {
			return err
		}
		for _, old := range existing {
			if err := tx.Where("meal_id = ?", old.ID).Delete(&entities.MealIngredient{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", old.ID).Delete(&entities.Meal{}).Error; err != nil {
				return err
			}
		}
		return tx.Create(meal).Error
	})
}

func (r *mealRepository) GetMealByID(ctx context.Context, id string) (*entities.Meal, error) {
	var meal entities.Meal
	if err := r.db.WithContext(ctx).
		Preload("Ingredients", ingredientsByPosition).
		Where("id = ?", id).
		First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) GetMeals(ctx context.Context, userID string) ([]*entities.Meal, error) {
	var meals []*entities.Meal
	if err := r.db.WithContext(ctx).
		Preload("Ingredients", ingredientsByPosition).
		Where("user_id = ?", userID).
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mealRepository) GetMealsForDay(ctx context.Context, userID string, day string) ([]*entities.Meal, error) {
	var meals []*entities.Meal
	if err := r.db.WithContext(ctx).
		Preload("Ingredients", ingredientsByPosition).
		Where("user_id = ? AND day = ?", userID, day).
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mealRepository) DeleteMeal(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", id).Delete(&entities.MealIngredient{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Meal{}).Error
	})
}

// FindItemByName does a case-insensitive exact match within the user's items.
func (r *mealRepository) FindItemByName(ctx context.Context, userID string, name string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &item, nil
}

func (r *mealRepository) GetItemByID(ctx context.Context, id string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &item, nil
}

// DepleteItem decrements the quantity by one, logs the USED entry and removes
// the item once it reaches zero, all in one transaction. Returns true when
// the item was deleted.
func (r *mealRepository) DepleteItem(ctx context.Context, item *entities.Item, logEntry *entities.ActivityLog) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(logEntry).Error; err != nil {
			return err
		}
		item.Quantity--
		if item.Quantity <= 0 {
			deleted = true
			return tx.Where("id = ?", item.ID).Delete(&entities.Item{}).Error
		}
		return tx.Save(item).Error
	})
	return deleted, err
}
