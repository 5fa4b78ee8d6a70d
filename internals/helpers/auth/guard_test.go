package helper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"quizmaker_backend/internals/constants"
	helper "quizmaker_backend/internals/helpers"
)

func TestRequireRole(t *testing.T) {
	student := Claims{UserID: uuid.New(), FullName: "Sam", Role: constants.RoleStudent}
	teacher := Claims{UserID: uuid.New(), FullName: "Tia", Role: constants.RoleTeacher}

	require.NoError(t, RequireRole(student, constants.StudentOnly...))
	require.NoError(t, RequireRole(teacher, constants.TeacherOnly...))
	require.NoError(t, RequireRole(teacher, constants.AllRoles...))

	err := RequireRole(student, constants.TeacherOnly...)
	require.True(t, helper.IsKind(err, helper.KindForbidden))

	err = RequireRole(teacher, constants.StudentOnly...)
	require.True(t, helper.IsKind(err, helper.KindForbidden))
}

func TestRequireRoleRejectsUnknownRole(t *testing.T) {
	admin := Claims{UserID: uuid.New(), Role: constants.Role("admin")}
	err := RequireRole(admin, constants.Role("admin"))
	require.True(t, helper.IsKind(err, helper.KindForbidden))

	err = RequireRole(Claims{}, constants.AllRoles...)
	require.True(t, helper.IsKind(err, helper.KindForbidden))

	// roles compare exactly; the wire form is parsed before it gets here
	err = RequireRole(Claims{UserID: uuid.New(), Role: constants.Role("Teacher")}, constants.Role("Teacher"))
	require.True(t, helper.IsKind(err, helper.KindForbidden))
}

func TestStoreAndReadClaims(t *testing.T) {
	want := Claims{UserID: uuid.New(), FullName: "Tia", Role: constants.RoleTeacher}
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		_, ok := ClaimsFromCtx(c)
		require.False(t, ok)

		StoreClaims(c, want)
		got, ok := ClaimsFromCtx(c)
		require.True(t, ok)
		require.Equal(t, want, got)
		require.Equal(t, want.UserID.String(), c.Locals(LocUserID))
		require.Equal(t, "teacher", c.Locals(LocUserRole))
		return c.SendStatus(http.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}
