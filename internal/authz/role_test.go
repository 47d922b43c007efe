package authz_test

import (
	"testing"

	"github.com/fathomcrm/fathom/internal/authz"
	"github.com/fathomcrm/fathom/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRoleLevel(t *testing.T) {
	assert.Equal(t, 0, authz.RoleLevel(model.RoleMember))
	assert.Equal(t, 1, authz.RoleLevel(model.RoleAdmin))
	assert.Equal(t, 2, authz.RoleLevel(model.RoleOwner))
	assert.Equal(t, -1, authz.RoleLevel(model.Role("superuser")))
	assert.Equal(t, -1, authz.RoleLevel(model.Role("")))
}

func TestRoleMeets(t *testing.T) {
	tests := []struct {
		name string
		have model.Role
		want model.Role
		meet bool
	}{
		{"member meets member", model.RoleMember, model.RoleMember, true},
		{"member below admin", model.RoleMember, model.RoleAdmin, false},
		{"member below owner", model.RoleMember, model.RoleOwner, false},
		{"admin meets member", model.RoleAdmin, model.RoleMember, true},
		{"admin meets admin", model.RoleAdmin, model.RoleAdmin, true},
		{"admin below owner", model.RoleAdmin, model.RoleOwner, false},
		{"owner meets member", model.RoleOwner, model.RoleMember, true},
		{"owner meets admin", model.RoleOwner, model.RoleAdmin, true},
		{"owner meets owner", model.RoleOwner, model.RoleOwner, true},
		{"unknown held role fails every check", model.Role("superuser"), model.RoleMember, false},
		{"unknown required role is never satisfied", model.RoleOwner, model.Role("superuser"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.meet, authz.RoleMeets(tt.have, tt.want))
		})
	}
}

func TestRoleMeetsAny(t *testing.T) {
	t.Run("satisfies one of several", func(t *testing.T) {
		assert.True(t, authz.RoleMeetsAny(model.RoleAdmin, []model.Role{model.RoleOwner, model.RoleAdmin}))
	})

	t.Run("satisfies none", func(t *testing.T) {
		assert.False(t, authz.RoleMeetsAny(model.RoleMember, []model.Role{model.RoleAdmin, model.RoleOwner}))
	})

	t.Run("empty want list", func(t *testing.T) {
		assert.False(t, authz.RoleMeetsAny(model.RoleOwner, nil))
	})
}
