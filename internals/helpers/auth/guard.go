package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"quizmaker_backend/internals/constants"
	helper "quizmaker_backend/internals/helpers"
)

// Locals keys diisi oleh middleware auth.
const (
	LocClaims   = "claims"
	LocUserID   = "user_id"
	LocUserRole = "userRole"
)

// Claims is the identity carried by a verified token.
type Claims struct {
	UserID   uuid.UUID
	FullName string
	Role     constants.Role
}

// RequireRole fails with a ForbiddenError unless claims.Role is one of allowed.
// Roles outside the known set are always rejected.
func RequireRole(claims Claims, allowed ...constants.Role) error {
	if !claims.Role.Valid() {
		return helper.ForbiddenError("Forbidden: unknown role")
	}
	for _, r := range allowed {
		if claims.Role == r {
			return nil
		}
	}
	return helper.ForbiddenError("Forbidden: you are not authorized to access this resource")
}

// StoreClaims hydrates Locals after a token has been verified.
func StoreClaims(c *fiber.Ctx, claims Claims) {
	c.Locals(LocClaims, claims)
	c.Locals(LocUserID, claims.UserID.String())
	c.Locals(LocUserRole, string(claims.Role))
}

// ClaimsFromCtx returns the claims stored by the auth middleware.
func ClaimsFromCtx(c *fiber.Ctx) (Claims, bool) {
	claims, ok := c.Locals(LocClaims).(Claims)
	return claims, ok
}
