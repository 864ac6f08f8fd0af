package domain

import "time"

type Role string

const (
	RoleUser       Role = "user"
	RoleMember     Role = "member"
	RolePremium    Role = "premium"
	RoleVIP        Role = "vip"
	RoleModerator  Role = "moderator"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

var roleRanks = map[Role]int{
	RoleSuperAdmin: 100,
	RoleAdmin:      80,
	RoleModerator:  60,
	RoleVIP:        40,
	RolePremium:    30,
	RoleMember:     20,
	RoleUser:       10,
}

// Rank returns the position of the role in the hierarchy, 0 for unknown roles.
func (r Role) Rank() int {
	return roleRanks[r]
}

func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}

// IsStaff reports whether the role is outside the paid tiers.
func (r Role) IsStaff() bool {
	return r == RoleModerator || r == RoleAdmin || r == RoleSuperAdmin
}

// IsPaid reports whether the role is a paid tier that can expire.
func (r Role) IsPaid() bool {
	return r == RoleMember || r == RolePremium || r == RoleVIP
}

// AtLeast reports whether r ranks at or above min.
func (r Role) AtLeast(min Role) bool {
	return r.Rank() >= min.Rank()
}

// EffectiveRole applies the read-time expiry rule: a paid role whose access
// has run out is seen as user. Staff roles never expire.
func EffectiveRole(role Role, expiresAt *time.Time, now time.Time) Role {
	if !role.IsPaid() {
		return role
	}
	if expiresAt == nil || !expiresAt.After(now) {
		return RoleUser
	}
	return role
}
