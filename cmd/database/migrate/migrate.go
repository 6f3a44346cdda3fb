package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"saveplate/entities"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Item{}); err != nil {
		log.Fatalf("Error migrating item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Meal{}, &entities.MealIngredient{}); err != nil {
		log.Fatalf("Error migrating meal database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ActivityLog{}); err != nil {
		log.Fatalf("Error migrating activity log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Notification{}); err != nil {
		log.Fatalf("Error migrating notification database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
