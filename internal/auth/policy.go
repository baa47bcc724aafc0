package auth

import (
	"github.com/linguaflow/scorereport/internal/errors"
)

// Identity is the resolved caller of a request.
type Identity struct {
	UserID string
	Role   string
}

// Policy decides which users' attempts a caller may read. One instance is
// shared by every handler so role handling stays in one place.
type Policy struct {
	adminRoles map[string]struct{}
}

// NewPolicy creates a Policy treating the given roles as privileged.
func NewPolicy(adminRoles []string) *Policy {
	roles := make(map[string]struct{}, len(adminRoles))
	for _, r := range adminRoles {
		roles[r] = struct{}{}
	}
	return &Policy{adminRoles: roles}
}

// IsPrivileged reports whether the caller may read other users' attempts.
func (p *Policy) IsPrivileged(caller Identity) bool {
	_, ok := p.adminRoles[caller.Role]
	return ok
}

// CanAccessUser reports whether the caller may read userID's attempts.
func (p *Policy) CanAccessUser(caller Identity, userID string) bool {
	return p.IsPrivileged(caller) || caller.UserID == userID
}

// EffectiveUserFilter resolves the user_id filter to apply for a request.
// Privileged callers get what they asked for, including the empty filter
// meaning all users. Non-privileged callers omitting user_id are silently
// narrowed to their own attempts; asking for someone else's fails Forbidden.
func (p *Policy) EffectiveUserFilter(caller Identity, requested string) (string, error) {
	if p.IsPrivileged(caller) {
		return requested, nil
	}
	if requested == "" || requested == caller.UserID {
		return caller.UserID, nil
	}
	return "", errors.NewForbiddenError("cannot access another user's attempts")
}
