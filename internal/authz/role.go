// internal/authz/role.go
package authz

import (
	"strings"

	"github.com/fathomcrm/fathom/internal/model"
)

// roleLevels is the single source of truth for the role hierarchy.
var roleLevels = map[model.Role]int{
	model.RoleMember: 0,
	model.RoleAdmin:  1,
	model.RoleOwner:  2,
}

// unknownLevel sits below every valid level so a corrupted record fails every
// comparison instead of crashing the gate.
const unknownLevel = -1

// RoleLevel returns the hierarchy level of a role, or unknownLevel for any
// role name outside the closed set.
func RoleLevel(role model.Role) int {
	if lvl, ok := roleLevels[role]; ok {
		return lvl
	}
	return unknownLevel
}

// RoleMeets reports whether have meets or exceeds want. An unrecognized
// required role can never be satisfied.
func RoleMeets(have, want model.Role) bool {
	wantLevel, ok := roleLevels[want]
	if !ok {
		return false
	}
	return RoleLevel(have) >= wantLevel
}

// RoleMeetsAny reports whether have satisfies at least one of the wanted
// roles.
func RoleMeetsAny(have model.Role, want []model.Role) bool {
	for _, w := range want {
		if RoleMeets(have, w) {
			return true
		}
	}
	return false
}

func joinRoles(roles []model.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
