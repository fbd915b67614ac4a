package models

// IdentityContextKey is the request-context key the authentication
// middleware stores the resolved RequestIdentity under. It lives here so
// both the middleware and the handlers read the same key without
// depending on each other.
const IdentityContextKey = "request_identity"

// RequestIdentity is the resolved caller identity for a single request.
// It is derived from a verified access token by the authentication
// middleware, lives only in that request's context and is never persisted.
type RequestIdentity struct {
	Subject string
	Email   string
	Role    string
}

// IsZero reports whether no identity was attached to the request
func (ri RequestIdentity) IsZero() bool {
	return ri.Subject == ""
}

// IsAdmin returns true when the caller holds the admin role
func (ri RequestIdentity) IsAdmin() bool {
	return ri.Role == RoleAdmin
}

// HasRole returns true when the caller holds one of the given roles
func (ri RequestIdentity) HasRole(roles ...string) bool {
	for _, role := range roles {
		if ri.Role == role {
			return true
		}
	}
	return false
}
