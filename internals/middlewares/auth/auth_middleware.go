// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	helper "quizmaker_backend/internals/helpers"
	helperAuth "quizmaker_backend/internals/helpers/auth"
)

// Verifier turns a raw bearer token into verified claims.
type Verifier interface {
	Verify(raw string) (helperAuth.Claims, error)
}

type AuthJWTOpts struct {
	Verifier Verifier
	// Status untuk token gagal diverifikasi (default 401).
	FailureStatus int
	Log           *zap.Logger
}

// AuthJWT verifies the Bearer token and stores the claims in Locals.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	if o.Verifier == nil {
		panic("AuthJWT: Verifier wajib diisi")
	}
	status := o.FailureStatus
	if status == 0 {
		status = fiber.StatusUnauthorized
	}
	log := o.Log
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *fiber.Ctx) error {
		raw := helper.GetBearerToken(c)

		claims, err := o.Verifier.Verify(raw)
		if err != nil {
			msg := "Invalid token"
			var appErr *helper.AppError
			if errors.As(err, &appErr) {
				msg = appErr.Message
			}
			log.Warn("token rejected",
				zap.String("path", c.Path()),
				zap.String("reason", msg))
			return helper.JsonError(c, status, msg)
		}

		helperAuth.StoreClaims(c, claims)
		return c.Next()
	}
}
