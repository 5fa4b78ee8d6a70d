package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// newIPLimiter allows max requests per window per client IP. max <= 0 turns
// the limiter into a pass-through.
func newIPLimiter(max int, window time.Duration, message string) fiber.Handler {
	if max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": message,
			})
		},
	})
}

// Rate limiter untuk login route (lebih ketat)
func LoginRateLimiter(max int) fiber.Handler {
	return newIPLimiter(max, 1*time.Minute, "❌ Too many login attempts. Please try again shortly.")
}

// Rate limiter untuk signup route
func RegisterRateLimiter(max int) fiber.Handler {
	return newIPLimiter(max, 5*time.Minute, "❌ Too many signup attempts. Please wait a few minutes.")
}
