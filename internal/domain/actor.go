package domain

// Role is the capability set an actor carries.
type Role string

// Actor roles.
const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

// Actor is the staff member performing a transition. Reverts require the
// administrative capability.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// IsAdmin reports whether the actor holds the administrative capability.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
