package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"quizmaker_backend/internals/constants"
	helper "quizmaker_backend/internals/helpers"
	helperAuth "quizmaker_backend/internals/helpers/auth"
)

type stubVerifier map[string]helperAuth.Claims

func (s stubVerifier) Verify(raw string) (helperAuth.Claims, error) {
	if raw == "" {
		return helperAuth.Claims{}, helper.AuthError("Token is missing")
	}
	c, ok := s[raw]
	if !ok {
		return helperAuth.Claims{}, helper.AuthError("Invalid token")
	}
	return c, nil
}

func newApp(status int, v stubVerifier, roles ...constants.Role) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{AuthJWT(AuthJWTOpts{Verifier: v, FailureStatus: status, Log: zap.NewNop()})}
	if len(roles) > 0 {
		handlers = append(handlers, OnlyRoles(zap.NewNop(), "teachers only", roles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		claims, _ := helperAuth.ClaimsFromCtx(c)
		return c.SendString(claims.FullName + "|" + c.Locals(helperAuth.LocUserRole).(string))
	})
	app.Get("/", handlers...)
	return app
}

func get(t *testing.T, app *fiber.App, token string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	buf := make([]byte, 512)
	n, _ := resp.Body.Read(buf)
	return resp.StatusCode, string(buf[:n])
}

func TestAuthJWT(t *testing.T) {
	v := stubVerifier{
		"good": {UserID: uuid.New(), FullName: "Tia", Role: constants.RoleTeacher},
	}

	app := newApp(0, v)
	status, body := get(t, app, "")
	require.Equal(t, http.StatusUnauthorized, status)
	var msg helper.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &msg))
	require.Equal(t, "Token is missing", msg.Message)

	status, _ = get(t, app, "bad")
	require.Equal(t, http.StatusUnauthorized, status)

	status, body = get(t, app, "good")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Tia|teacher", body)

	status, _ = get(t, newApp(http.StatusForbidden, v), "bad")
	require.Equal(t, http.StatusForbidden, status)
}

func TestOnlyRoles(t *testing.T) {
	v := stubVerifier{
		"teacher": {UserID: uuid.New(), FullName: "T", Role: constants.RoleTeacher},
		"student": {UserID: uuid.New(), FullName: "S", Role: constants.RoleStudent},
		"ghost":   {UserID: uuid.New(), FullName: "G", Role: constants.Role("admin")},
	}
	app := newApp(0, v, constants.TeacherOnly...)

	status, _ := get(t, app, "teacher")
	require.Equal(t, http.StatusOK, status)

	status, body := get(t, app, "student")
	require.Equal(t, http.StatusForbidden, status)
	require.Contains(t, body, "teachers only")

	status, _ = get(t, app, "ghost")
	require.Equal(t, http.StatusForbidden, status)
}
