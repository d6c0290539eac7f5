package session

import "fmt"

// Role is the single-valued role of the authenticated identity. It is
// obtained once at login or session restore and never changes without a
// fresh login.
type Role int

const (
	RoleStudent Role = iota
	RoleInstructor
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "STUDENT"
	case RoleInstructor:
		return "INSTRUCTOR"
	case RoleAdmin:
		return "ADMIN"
	default:
		return "UNKNOWN"
	}
}

// ParseRole maps the server's role string to a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "STUDENT":
		return RoleStudent, nil
	case "INSTRUCTOR":
		return RoleInstructor, nil
	case "ADMIN":
		return RoleAdmin, nil
	default:
		return 0, fmt.Errorf("unknown role %q", s)
	}
}
