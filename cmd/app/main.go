package main

import (
	"FoodExpiryTracker/cmd/config"
	migration "FoodExpiryTracker/cmd/database/migrate"
	"FoodExpiryTracker/internal/utils"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to set up app: %v", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		if err := app.Shutdown(); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "3000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("failed to listen on port %s: %v", port, err)
	}

	// Listen has returned, so shutdown completed; release the database
	// handle before exiting.
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
