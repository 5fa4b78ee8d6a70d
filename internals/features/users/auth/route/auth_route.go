// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"quizmaker_backend/internals/configs"
	controller "quizmaker_backend/internals/features/users/auth/controller"
	"quizmaker_backend/internals/features/users/auth/service"
	rateLimiter "quizmaker_backend/internals/middlewares"
	authMiddleware "quizmaker_backend/internals/middlewares/auth"
)

// AuthRoutes mounts signup, login and the protected route under api (/api).
func AuthRoutes(api fiber.Router, auth *service.Authenticator, cfg configs.Config, log *zap.Logger) {
	authController := controller.NewAuthController(auth, log)

	// 🔓 Public
	api.Post("/signup", rateLimiter.RegisterRateLimiter(cfg.SignupRateLimit), authController.Signup)
	api.Post("/login", rateLimiter.LoginRateLimiter(cfg.LoginRateLimit), authController.Login)

	// 🔒 token failures answer 403 here
	api.Get("/protected",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Verifier:      auth,
			FailureStatus: fiber.StatusForbidden,
			Log:           log,
		}),
		authController.Protected,
	)
}
