package constants

import "fmt"

const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Numeric role codes accepted by POST /register.
const (
	RoleCodeTeacher = 1
	RoleCodeStudent = 2
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess = "❌ Apenas professores podem acessar %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

// RoleFromCode maps a registration role code to the stored role text.
func RoleFromCode(code int) (string, bool) {
	switch code {
	case RoleCodeTeacher:
		return RoleTeacher, true
	case RoleCodeStudent:
		return RoleStudent, true
	default:
		return "", false
	}
}

// IsValidRole reports whether role is one of the stored role texts.
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleTeacher,
		RoleStudent,
	}

	TeacherOnly = []string{
		RoleTeacher,
	}
)
