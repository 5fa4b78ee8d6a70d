package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"quizmaker_backend/internals/constants"
	helper "quizmaker_backend/internals/helpers"
	helperAuth "quizmaker_backend/internals/helpers/auth"
)

// RoleMiddlewareWithCustomError validasi role + custom error message.
// Must run after AuthJWT.
func RoleMiddlewareWithCustomError(log *zap.Logger, allowedRoles []constants.Role, customForbiddenMessage string) fiber.Handler {
	if customForbiddenMessage == "" {
		customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
	}
	return func(c *fiber.Ctx) error {
		claims, ok := helperAuth.ClaimsFromCtx(c)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}

		if err := helperAuth.RequireRole(claims, allowedRoles...); err != nil {
			log.Warn("role rejected",
				zap.String("user_id", claims.UserID.String()),
				zap.String("role", claims.Role.String()),
				zap.String("path", c.Path()))
			return helper.JsonError(c, fiber.StatusForbidden, customForbiddenMessage)
		}
		return c.Next()
	}
}

// Shortcut biar lebih clean pemakaian
func OnlyRoles(log *zap.Logger, customMessage string, roles ...constants.Role) fiber.Handler {
	return RoleMiddlewareWithCustomError(log, roles, customMessage)
}
