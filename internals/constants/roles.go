package constants

import (
	"fmt"
	"strings"
)

// Role is the account type chosen at signup. It never changes afterwards.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess = "Only teachers can access %s."
	ErrOnlyStudentsCanAccess = "Only students can access %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

// ParseRole accepts the wire value case-insensitively.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleStudent:
		return RoleStudent, true
	case RoleTeacher:
		return RoleTeacher, true
	default:
		return "", false
	}
}

func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok && string(r) == strings.ToLower(string(r))
}

func (r Role) String() string { return string(r) }

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles    = []Role{RoleStudent, RoleTeacher}
	TeacherOnly = []Role{RoleTeacher}
	StudentOnly = []Role{RoleStudent}
)
