package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"saveplate/internal/api/handlers"
	"saveplate/internal/api/routes"
	"saveplate/internal/middleware"
	"saveplate/internal/utils"
	"saveplate/internal/utils/storage"
	"saveplate/pkg/analytics"
	"saveplate/pkg/donation"
	"saveplate/pkg/inventory"
	"saveplate/pkg/jwt"
	"saveplate/pkg/meal"
	"saveplate/pkg/notification"
	"saveplate/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	itemRepository := inventory.NewItemRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	mealRepository := meal.NewMealRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	analyticsRepository := analytics.NewAnalyticsRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	itemService := inventory.NewItemService(itemRepository, s3)
	donationService := donation.NewDonationService(donationRepository, itemRepository, userRepository)
	mealService := meal.NewMealService(mealRepository)
	notificationService := notification.NewNotificationService(notificationRepository, itemRepository, mealRepository)
	analyticsService := analytics.NewAnalyticsService(analyticsRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	itemHandler := handlers.NewItemHandler(itemService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		ItemHandler:         itemHandler,
		DonationHandler:     donationHandler,
		MealHandler:         mealHandler,
		NotificationHandler: notificationHandler,
		AnalyticsHandler:    analyticsHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
