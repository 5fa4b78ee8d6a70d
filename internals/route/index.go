// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"quizmaker_backend/internals/configs"
	quizRoute "quizmaker_backend/internals/features/quizzes/quizzes/route"
	resultsRoute "quizmaker_backend/internals/features/quizzes/results/route"
	authRepo "quizmaker_backend/internals/features/users/auth/repository"
	authRoute "quizmaker_backend/internals/features/users/auth/route"
	authService "quizmaker_backend/internals/features/users/auth/service"
	authMiddleware "quizmaker_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config, log *zap.Logger) {
	BaseRoutes(app, db, cfg, time.Now())

	auth := authService.NewAuthenticator(authRepo.NewUserRepository(db), authService.Options{
		Secret:     cfg.JWTSecret,
		TokenTTL:   cfg.TokenTTL,
		BcryptCost: cfg.BcryptCost,
	}, log)

	// ===================== GROUPS =====================
	api := app.Group("/api")
	authJWT := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Verifier: auth,
		Log:      log,
	})

	// ===================== MOUNT ROUTES =====================
	log.Info("mounting auth routes")
	authRoute.AuthRoutes(api, auth, cfg, log)

	log.Info("mounting quiz routes")
	quizRoute.QuizRoutes(api, db, cfg, log, authJWT)

	log.Info("mounting results routes")
	resultsRoute.ResultsRoutes(api, db, log)
}
