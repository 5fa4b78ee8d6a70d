package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LocRequestID is where the request log middleware stores the request id.
const LocRequestID = "reqid"

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// JsonError writes {message} with the given status.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(ErrorResponse{Message: message})
}

// WriteError logs err with request context and translates it into the
// standard error body. Store failures carry the cause in "error".
func WriteError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = StoreError("Server error", err)
	}
	status := appErr.Kind.Status()

	fields := []zap.Field{
		zap.String("kind", appErr.Kind.String()),
		zap.Int("status", status),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	}
	if id, ok := c.Locals(LocRequestID).(string); ok {
		fields = append(fields, zap.String("request_id", id))
	}

	body := ErrorResponse{Message: appErr.Message}
	if status >= fiber.StatusInternalServerError {
		log.Error("request failed", fields...)
		if appErr.Err != nil {
			body.Error = appErr.Err.Error()
		}
	} else {
		log.Warn("request rejected", fields...)
	}
	return c.Status(status).JSON(body)
}

/* ===============================
   JSON responses (standard success)
=================================*/

// JsonMessage writes {message} plus any extra top-level fields.
func JsonMessage(c *fiber.Ctx, status int, message string, extra fiber.Map) error {
	body := fiber.Map{"message": message}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}
