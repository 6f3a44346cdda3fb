package main

import (
	"fmt"
	"log"

	"saveplate/cmd/config"
	migration "saveplate/cmd/database/migrate"
	"saveplate/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("App initialization failed: %v", err)
	}

	if err := app.Listen(fmt.Sprintf(":%s", utils.GetConfig("APP_PORT"))); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
