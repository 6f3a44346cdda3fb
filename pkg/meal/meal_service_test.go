package meal

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"saveplate/domain"
	"saveplate/entities"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{
		DriverName: "sqlite",
		DSN:        fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Item{},
		&entities.Meal{},
		&entities.MealIngredient{},
		&entities.ActivityLog{},
	); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) *entities.User {
	t.Helper()
	u := &entities.User{
		ID:       uuid.New(),
		FullName: name,
		Email:    email,
		Password: "hashed",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return u
}

func seedItem(t *testing.T, db *gorm.DB, ownerID uuid.UUID, name string, quantity int) *entities.Item {
	t.Helper()
	item := &entities.Item{
		ID:         uuid.New(),
		UserID:     ownerID,
		Name:       name,
		Quantity:   quantity,
		ExpiryDate: time.Now().AddDate(0, 0, 14),
		Category:   "Fresh",
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to seed item: %v", err)
	}
	return item
}

func TestSavePlanResolvesIngredients(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "Ayu", "ayu@example.com")
	eggs := seedItem(t, db, owner.ID, "Eggs", 6)
	service := NewMealService(NewMealRepository(db))

	res, err := service.SavePlan(context.Background(), domain.SaveMealRequest{
		Day:         "Monday",
		Slot:        "Dinner",
		DishName:    "Omelette",
		Ingredients: []string{"eggs", "Bread"},
	}, owner.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, []string{"eggs", "Bread"}, res.Ingredients)

	var ingredients []entities.MealIngredient
	assert.NoError(t, db.Where("meal_id = ?", res.ID).Order("position asc").Find(&ingredients).Error)
	assert.Len(t, ingredients, 2)

	// name match is case-insensitive
	if assert.NotNil(t, ingredients[0].ItemID) {
		assert.Equal(t, eggs.ID, *ingredients[0].ItemID)
	}
	assert.Nil(t, ingredients[1].ItemID)
}

func TestSavePlanReplacesSlot(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "Ayu", "ayu@example.com")
	service := NewMealService(NewMealRepository(db))

	_, err := service.SavePlan(context.Background(), domain.SaveMealRequest{
		Day:      "Tuesday",
		Slot:     "Lunch",
		DishName: "Fried Rice",
	}, owner.ID.String())
	assert.NoError(t, err)

	_, err = service.SavePlan(context.Background(), domain.SaveMealRequest{
		Day:      "Tuesday",
		Slot:     "Lunch",
		DishName: "Noodle Soup",
	}, owner.ID.String())
	assert.NoError(t, err)

	meals, err := service.GetMeals(context.Background(), owner.ID.String())
	assert.NoError(t, err)
	assert.Len(t, meals, 1)
	assert.Equal(t, "Noodle Soup", meals[0].DishName)
}

func TestCook(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "Ayu", "ayu@example.com")
	eggs := seedItem(t, db, owner.ID, "Eggs", 1)
	milk := seedItem(t, db, owner.ID, "Milk", 3)
	service := NewMealService(NewMealRepository(db))

	saved, err := service.SavePlan(context.Background(), domain.SaveMealRequest{
		Day:         "Wednesday",
		Slot:        "Breakfast",
		DishName:    "Pancakes",
		Ingredients: []string{"Eggs", "Milk", "Bread"},
	}, owner.ID.String())
	assert.NoError(t, err)

	res, err := service.Cook(context.Background(), saved.ID, owner.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"Used up Eggs",
		"Decreased Milk to 2",
		"Bread not found in inventory (skipped)",
	}, res.Updates)

	var gone entities.Item
	err = db.Where("id = ?", eggs.ID).First(&gone).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var remaining entities.Item
	assert.NoError(t, db.Where("id = ?", milk.ID).First(&remaining).Error)
	assert.Equal(t, 2, remaining.Quantity)

	var logs []entities.ActivityLog
	assert.NoError(t, db.Where("user_id = ? AND action_type = ?", owner.ID, domain.ActionUsed).Find(&logs).Error)
	assert.Len(t, logs, 2)
	for _, entry := range logs {
		assert.Equal(t, 1, entry.Quantity)
	}
}

func TestCookRepairsStaleItemID(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "Ayu", "ayu@example.com")
	original := seedItem(t, db, owner.ID, "Eggs", 1)
	service := NewMealService(NewMealRepository(db))

	saved, err := service.SavePlan(context.Background(), domain.SaveMealRequest{
		Day:         "Thursday",
		Slot:        "Dinner",
		DishName:    "Omelette",
		Ingredients: []string{"Eggs"},
	}, owner.ID.String())
	assert.NoError(t, err)

	// The resolved item disappears and a fresh one with the same name
	// takes its place before cooking.
	assert.NoError(t, db.Where("id = ?", original.ID).Delete(&entities.Item{}).Error)
	replacement := seedItem(t, db, owner.ID, "Eggs", 2)

	res, err := service.Cook(context.Background(), saved.ID, owner.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, []string{"Decreased Eggs to 1"}, res.Updates)

	var stored entities.Item
	assert.NoError(t, db.Where("id = ?", replacement.ID).First(&stored).Error)
	assert.Equal(t, 1, stored.Quantity)
}

func TestCookOwnership(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "Ayu", "ayu@example.com")
	stranger := seedUser(t, db, "Budi", "budi@example.com")
	service := NewMealService(NewMealRepository(db))

	saved, err := service.SavePlan(context.Background(), domain.SaveMealRequest{
		Day:      "Friday",
		Slot:     "Lunch",
		DishName: "Salad",
	}, owner.ID.String())
	assert.NoError(t, err)

	_, err = service.Cook(context.Background(), saved.ID, stranger.ID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedMealAccess)

	_, err = service.Cook(context.Background(), uuid.NewString(), owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrMealNotFound)
}

func TestDeleteMeal(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "Ayu", "ayu@example.com")
	stranger := seedUser(t, db, "Budi", "budi@example.com")
	service := NewMealService(NewMealRepository(db))

	saved, err := service.SavePlan(context.Background(), domain.SaveMealRequest{
		Day:         "Saturday",
		Slot:        "Dinner",
		DishName:    "Stew",
		Ingredients: []string{"Carrots"},
	}, owner.ID.String())
	assert.NoError(t, err)

	err = service.DeleteMeal(context.Background(), saved.ID, stranger.ID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedMealAccess)

	assert.NoError(t, service.DeleteMeal(context.Background(), saved.ID, owner.ID.String()))

	meals, err := service.GetMeals(context.Background(), owner.ID.String())
	assert.NoError(t, err)
	assert.Empty(t, meals)

	var count int64
	assert.NoError(t, db.Model(&entities.MealIngredient{}).Where("meal_id = ?", saved.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
