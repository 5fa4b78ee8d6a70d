package constants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"student", RoleStudent, true},
		{" Teacher ", RoleTeacher, true},
		{"admin", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseRole(tc.in)
		require.Equal(t, tc.ok, ok, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestRoleValid(t *testing.T) {
	require.True(t, RoleStudent.Valid())
	require.True(t, RoleTeacher.Valid())
	require.False(t, Role("owner").Valid())
	require.False(t, Role("Teacher").Valid())
}
