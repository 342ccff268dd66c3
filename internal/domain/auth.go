package domain

// Identity is what a verified bearer token says about its caller.
type Identity struct {
	UserID string
	Role   Role
}

// IsAdmin reports whether the caller carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
