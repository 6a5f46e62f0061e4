package account

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleProvider Role = "Provider"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleProvider:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Platform names the channel that produced a history entry.
type Platform string

const (
	PlatformCouponSystem     Platform = "CouponSystem"
	PlatformMembershipDirect Platform = "MembershipDirect"
)

func (p Platform) String() string {
	return string(p)
}

const StatusActive = "active"
