package middleware

import (
	"FoodExpiryTracker/domain"
	"FoodExpiryTracker/internal/api/presenters"
	"FoodExpiryTracker/pkg/jwt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		VerifyEmailMiddleware() fiber.Handler
		CORSMiddleware(allowedOrigins []string) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

// AuthMiddleware verifies the bearer credential and stores the verified
// email in locals. Failures short-circuit before any store operation.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, nil)
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		email, err := jwtService.GetEmailByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, nil)
		}

		c.Locals("email", email)
		return c.Next()
	}
}

// VerifyEmailMiddleware narrows an authenticated request to its own-data
// view when the caller asserts an identity via the email query parameter.
// An absent parameter skips the check; the guard never widens access.
func (m *middleware) VerifyEmailMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		queryEmail := c.Query("email")
		verifiedEmail, _ := c.Locals("email").(string)

		if queryEmail != "" && queryEmail != verifiedEmail {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageForbidden, nil)
		}
		return c.Next()
	}
}

// CORSMiddleware accepts the fixed allow-list of origins. Requests
// without an Origin header (curl, Postman) pass through untouched.
func (m *middleware) CORSMiddleware(allowedOrigins []string) fiber.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			_, ok := allowed[origin]
			return ok
		},
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PATCH, DELETE, OPTIONS",
	})
}
