package actor_test

import (
	"testing"

	"resto/internal/core/domain/model/actor"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	tests := []struct {
		value    string
		expected actor.Role
	}{
		{"USER", actor.User},
		{"user", actor.User},
		{"Owner", actor.Owner},
		{"ADMIN", actor.Admin},
		{"kitchen", actor.Kitchen},
		{"DELIVERY", actor.Delivery},
		{" delivery ", actor.Delivery},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			role, err := actor.RoleFromString(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, role)
		})
	}
}

func TestRoleFromString_Invalid(t *testing.T) {
	for _, value := range []string{"", "CHEF", "ROOT", "UNKNOWN"} {
		t.Run(value, func(t *testing.T) {
			_, err := actor.RoleFromString(value)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "USER", actor.User.String())
	assert.Equal(t, "OWNER", actor.Owner.String())
	assert.Equal(t, "UNKNOWN", actor.UnknownRole.String())
	assert.Equal(t, "UNKNOWN", actor.Role(42).String())
}

func TestRole_IsPrivileged(t *testing.T) {
	assert.True(t, actor.Owner.IsPrivileged())
	assert.True(t, actor.Admin.IsPrivileged())
	assert.False(t, actor.User.IsPrivileged())
	assert.False(t, actor.Kitchen.IsPrivileged())
	assert.False(t, actor.Delivery.IsPrivileged())
}

func TestRole_Validate(t *testing.T) {
	require.NoError(t, actor.User.Validate())
	require.Error(t, actor.UnknownRole.Validate())
	require.Error(t, actor.Role(42).Validate())
}

func TestNewActor(t *testing.T) {
	tenant, err := kernel.NewTenantID("BEMBOS")
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		a, actorErr := actor.NewActor(tenant, "u1", actor.User)
		require.NoError(t, actorErr)
		require.NoError(t, a.Validate())
		assert.Equal(t, "u1", a.ID())
		assert.Equal(t, actor.User, a.Role())
		assert.True(t, a.TenantID().IsEqual(tenant))
	})

	t.Run("missing identity", func(t *testing.T) {
		_, actorErr := actor.NewActor(tenant, "", actor.User)
		require.Error(t, actorErr)
		assert.ErrorIs(t, actorErr, errs.ErrValueIsRequired)
	})

	t.Run("invalid tenant", func(t *testing.T) {
		_, actorErr := actor.NewActor(kernel.TenantID{}, "u1", actor.User)
		require.Error(t, actorErr)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, actorErr := actor.NewActor(tenant, "u1", actor.UnknownRole)
		require.Error(t, actorErr)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var a actor.Actor
		require.ErrorIs(t, a.Validate(), actor.ErrActorIsNotConstructed)
	})
}
