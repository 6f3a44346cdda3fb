package routes

import (
	"github.com/gofiber/fiber/v2"

	"saveplate/internal/api/handlers"
	"saveplate/internal/middleware"
	"saveplate/pkg/jwt"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	ItemHandler         handlers.ItemHandler
	DonationHandler     handlers.DonationHandler
	MealHandler         handlers.MealHandler
	NotificationHandler handlers.NotificationHandler
	AnalyticsHandler    handlers.AnalyticsHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Inventory()
	c.Meals()
	c.Notifications()
	c.Analytics()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Inventory() {
	items := c.App.Group("/api/v1/inventory", c.Middleware.AuthMiddleware(c.JWTService))

	// Basic CRUD operations
	items.Post("/add", c.ItemHandler.AddItem)
	items.Get("", c.ItemHandler.GetItems)
	items.Get("/browse", c.DonationHandler.BrowseFeed)
	items.Get("/:id", c.ItemHandler.GetItemDetails)
	items.Put("/:id", c.ItemHandler.UpdateItem)
	items.Delete("/:id", c.ItemHandler.MarkUsed)

	// Donation and image operations
	items.Put("/:id/donate", c.DonationHandler.FlagDonation)
	items.Put("/:id/claim", c.DonationHandler.Claim)
	items.Post("/image", c.ItemHandler.UploadItemImage)
}

func (c *Config) Meals() {
	meals := c.App.Group("/api/v1/meals", c.Middleware.AuthMiddleware(c.JWTService))

	meals.Get("", c.MealHandler.GetMeals)
	meals.Post("", c.MealHandler.SaveMeal)
	meals.Delete("/:id", c.MealHandler.DeleteMeal)
	meals.Post("/:id/cook", c.MealHandler.CookMeal)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))

	notifications.Get("", c.NotificationHandler.GetNotifications)
	notifications.Put("/:id/read", c.NotificationHandler.MarkRead)
}

func (c *Config) Analytics() {
	analytics := c.App.Group("/api/v1/analytics", c.Middleware.AuthMiddleware(c.JWTService))

	analytics.Get("", c.AnalyticsHandler.GetAnalytics)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
