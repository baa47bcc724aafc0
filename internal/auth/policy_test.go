package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/scorereport/internal/auth"
	apperrors "github.com/linguaflow/scorereport/internal/errors"
)

func newPolicy() *auth.Policy {
	return auth.NewPolicy([]string{"admin", "service_role"})
}

func TestIsPrivileged(t *testing.T) {
	p := newPolicy()

	assert.True(t, p.IsPrivileged(auth.Identity{UserID: "u1", Role: "admin"}))
	assert.True(t, p.IsPrivileged(auth.Identity{UserID: "u1", Role: "service_role"}))
	assert.False(t, p.IsPrivileged(auth.Identity{UserID: "u1", Role: "student"}))
	assert.False(t, p.IsPrivileged(auth.Identity{UserID: "u1"}))
}

func TestEffectiveUserFilter_Privileged(t *testing.T) {
	p := newPolicy()
	admin := auth.Identity{UserID: "a1", Role: "admin"}

	got, err := p.EffectiveUserFilter(admin, "")
	require.NoError(t, err)
	assert.Equal(t, "", got, "empty filter means all users for admins")

	got, err = p.EffectiveUserFilter(admin, "u2")
	require.NoError(t, err)
	assert.Equal(t, "u2", got)
}

func TestEffectiveUserFilter_NonPrivilegedPinnedToSelf(t *testing.T) {
	p := newPolicy()
	caller := auth.Identity{UserID: "u1", Role: "student"}

	// Omitted filter narrows to the caller's own id.
	got, err := p.EffectiveUserFilter(caller, "")
	require.NoError(t, err)
	assert.Equal(t, "u1", got)

	// Asking for yourself is fine.
	got, err = p.EffectiveUserFilter(caller, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got)
}

func TestEffectiveUserFilter_CrossUserForbidden(t *testing.T) {
	p := newPolicy()
	caller := auth.Identity{UserID: "u1", Role: "student"}

	_, err := p.EffectiveUserFilter(caller, "u2")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeForbidden, appErr.Code)
	assert.Equal(t, 403, appErr.Status)
}

func TestCanAccessUser(t *testing.T) {
	p := newPolicy()

	assert.True(t, p.CanAccessUser(auth.Identity{UserID: "u1", Role: "admin"}, "u2"))
	assert.True(t, p.CanAccessUser(auth.Identity{UserID: "u1", Role: "student"}, "u1"))
	assert.False(t, p.CanAccessUser(auth.Identity{UserID: "u1", Role: "student"}, "u2"))
}
