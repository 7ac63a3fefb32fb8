package models

// Role is the closed set of user roles.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleTeacher, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Satisfies reports whether the role meets a required capability.
// Admin satisfies every requirement.
func (r Role) Satisfies(required Role) bool {
	if r == RoleAdmin {
		return true
	}
	return r == required
}
