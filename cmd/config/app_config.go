package config

import (
	"FoodExpiryTracker/internal/api/handlers"
	"FoodExpiryTracker/internal/api/routes"
	"FoodExpiryTracker/internal/middleware"
	"FoodExpiryTracker/internal/utils"
	"FoodExpiryTracker/pkg/food"
	"FoodExpiryTracker/pkg/jwt"
	"FoodExpiryTracker/pkg/note"
	"FoodExpiryTracker/pkg/reference"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging
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
		TimeZone:   "UTC",
		Output:     file,
	}))

	// Repository
	foodRepository := food.NewFoodRepository(db)
	noteRepository := note.NewNoteRepository(db)
	referenceRepository := reference.NewReferenceRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	foodService := food.NewFoodService(foodRepository)
	noteService := note.NewNoteService(noteRepository)
	referenceService := reference.NewReferenceService(referenceRepository)

	// Handler
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	noteHandler := handlers.NewNoteHandler(noteService, validator)
	referenceHandler := handlers.NewReferenceHandler(referenceService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		FoodHandler:      foodHandler,
		NoteHandler:      noteHandler,
		ReferenceHandler: referenceHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
		AllowedOrigins:   utils.GetAllowedOrigins(),
	}
	routesConfig.Setup()
	return app, nil
}
