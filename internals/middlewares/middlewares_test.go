package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"quizmaker_backend/internals/configs"
	"quizmaker_backend/internals/constants"
	helper "quizmaker_backend/internals/helpers"
	helperAuth "quizmaker_backend/internals/helpers/auth"
)

func newTestApp() *fiber.App {
	log := zap.NewNop()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(log)})
	SetupMiddlewares(app, configs.Config{CorsAllowOrigins: "*", RequestTimeout: time.Second}, log)
	return app
}

func decodeMessage(t *testing.T, resp *http.Response) helper.ErrorResponse {
	t.Helper()
	var body helper.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestRecoveryHidesPanicDetails(t *testing.T) {
	app := newTestApp()
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("secret internals")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeMessage(t, resp)
	require.NotContains(t, body.Message, "secret")
	require.Empty(t, body.Error)
}

func TestErrorHandlerShapes(t *testing.T) {
	app := newTestApp()
	app.Get("/fiber", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})
	app.Get("/app", func(c *fiber.Ctx) error {
		return helper.NotFoundError("Quiz not found")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fiber", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	require.Equal(t, "short and stout", decodeMessage(t, resp).Message)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/app", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "Quiz not found", decodeMessage(t, resp).Message)
}

func TestRequestIDIsPropagated(t *testing.T) {
	app := newTestApp()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(helper.LocRequestID).(string))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, "abc-123", resp.Header.Get(fiber.HeaderXRequestID))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestAccessLogCarriesCaller(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(log)})
	SetupMiddlewares(app, configs.Config{CorsAllowOrigins: "*", RequestTimeout: time.Second}, log)

	userID := uuid.New()
	app.Get("/me", func(c *fiber.Ctx) error {
		helperAuth.StoreClaims(c, helperAuth.Claims{UserID: userID, FullName: "Tina", Role: constants.RoleTeacher})
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/anon", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/anon", nil))
	require.NoError(t, err)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 2)
	me := entries[0].ContextMap()
	require.Equal(t, userID.String(), me["user_id"])
	require.Equal(t, "teacher", me["role"])
	require.NotContains(t, entries[1].ContextMap(), "user_id")
}

func TestRateLimiters(t *testing.T) {
	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Post("/login", LoginRateLimiter(1), ok)
	app.Post("/signup", RegisterRateLimiter(0), ok)

	statuses := func(path string, n int) []int {
		var out []int
		for i := 0; i < n; i++ {
			resp, err := app.Test(httptest.NewRequest(http.MethodPost, path, nil))
			require.NoError(t, err)
			out = append(out, resp.StatusCode)
		}
		return out
	}

	require.Equal(t, []int{200, 429}, statuses("/login", 2))
	require.Equal(t, []int{200, 200, 200}, statuses("/signup", 3))
}
