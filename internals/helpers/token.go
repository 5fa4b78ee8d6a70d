package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetBearerToken extracts the token from "Authorization: Bearer <token>".
// It tolerates repeated spaces, a lower-case scheme and quoted tokens.
func GetBearerToken(c *fiber.Ctx) string {
	fields := strings.Fields(c.Get(fiber.HeaderAuthorization))
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return ""
	}
	return strings.Trim(fields[1], "\"'")
}
