package middlewares

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	helper "quizmaker_backend/internals/helpers"
)

// ErrorHandler turns errors that escape a handler into the {message} body.
// AppErrors keep their kind; *fiber.Error keeps its code; anything else is a 500.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *helper.AppError
		if errors.As(err, &appErr) {
			return helper.WriteError(c, log, appErr)
		}

		code := fiber.StatusInternalServerError
		msg := fiber.ErrInternalServerError.Message
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("unhandled error",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err))
		}
		return helper.JsonError(c, code, msg)
	}
}
