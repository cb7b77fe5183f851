package presenters

import (
	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	res := fiber.Map{
		"message": message,
	}
	if err != nil {
		res["error"] = err.Error()
	}
	return c.Status(status).JSON(res)
}
