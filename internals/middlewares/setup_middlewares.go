package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"

	"quizmaker_backend/internals/configs"
	reqLogger "quizmaker_backend/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware global. The request logger wraps
// recovery so panics are logged with their final status.
func SetupMiddlewares(app *fiber.App, cfg configs.Config, log *zap.Logger) {
	app.Use(reqLogger.LoggerMiddleware(log, cfg.RequestTimeout))
	app.Use(RecoveryMiddleware(log))
	app.Use(CorsMiddleware(cfg.CorsAllowOrigins))

	// ⚙️ performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
}
