package routes

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"quizmaker_backend/internals/configs"
	middlewares "quizmaker_backend/internals/middlewares"
)

// NewApp builds the Fiber app with global middleware and every route mounted.
func NewApp(cfg configs.Config, db *gorm.DB, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ErrorHandler:          middlewares.ErrorHandler(log),
	})

	middlewares.SetupMiddlewares(app, cfg, log)
	SetupRoutes(app, db, cfg, log)
	return app
}
