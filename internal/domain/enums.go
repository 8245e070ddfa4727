package domain

// UserRole is the role claim carried by tokens that call the function endpoint.
type UserRole string

const (
	UserRoleAuthenticated UserRole = "authenticated"
	UserRoleServiceRole   UserRole = "service_role"
	UserRoleAdmin         UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

// IsValid reports whether r is one of the roles a token may carry.
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAuthenticated, UserRoleServiceRole, UserRoleAdmin:
		return true
	}
	return false
}
