package authz

// Role is the closed set of roles a profile can hold. Anything read
// from storage that is not one of these is treated as RoleUser.
type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

// ParseRole maps a stored role string onto the closed set, defaulting
// unknown values to RoleUser.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	case RoleModerator:
		return RoleModerator
	default:
		return RoleUser
	}
}

// IsStaff reports whether the role may access moderation surfaces.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleModerator
}
