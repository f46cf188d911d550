package types

import "strings"

// Identity is the authenticated caller attached to a request by the auth middleware.
type Identity struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// HasRole reports whether the identity holds one of roles. An empty list allows everyone.
func (i Identity) HasRole(roles ...string) bool {
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if strings.EqualFold(strings.TrimSpace(r), i.Role) {
			return true
		}
	}
	return false
}
