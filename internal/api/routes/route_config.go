package routes

import (
	"FoodExpiryTracker/internal/api/handlers"
	"FoodExpiryTracker/internal/middleware"
	"FoodExpiryTracker/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	FoodHandler      handlers.FoodHandler
	NoteHandler      handlers.NoteHandler
	ReferenceHandler handlers.ReferenceHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
	AllowedOrigins   []string
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware(c.AllowedOrigins))
	c.Liveness()
	c.Foods()
	c.Notes()
	c.Reference()
}

func (c *Config) Liveness() {
	c.App.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Food expiry tracker server running")
	})
}

func (c *Config) Foods() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	foods := c.App.Group("/foods")

	// The two expiry views are registered before /:id so the literal
	// segments are not captured as an identifier.
	foods.Get("/nearly-expired", c.FoodHandler.GetNearlyExpiredItems)
	foods.Get("/expired", c.FoodHandler.GetExpiredItems)

	foods.Post("", auth, c.FoodHandler.AddFoodItem)
	foods.Get("", auth, c.Middleware.VerifyEmailMiddleware(), c.FoodHandler.GetFoodItems)
	foods.Get("/:id", c.FoodHandler.GetFoodItemByID)
	foods.Patch("/:id", auth, c.FoodHandler.UpdateFoodItem)
	foods.Delete("/:id", auth, c.FoodHandler.DeleteFoodItem)
}

func (c *Config) Notes() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Get("/notes/:foodId", c.NoteHandler.GetNotesByFoodID)
	c.App.Post("/notes", auth, c.NoteHandler.AddNote)
}

func (c *Config) Reference() {
	c.App.Get("/tips", c.ReferenceHandler.GetTips)
	c.App.Get("/expiryLabel", c.ReferenceHandler.GetExpiryLabels)
}
