// Package models defines the client-side domain types: the authenticated
// identity, the active session, the in-flight upload attempt, and
// classification results/records.
package models

// Role describes the authorization level of an identity.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Identity is the user record as reported by the backend. It is immutable
// for the lifetime of a session; the role is assigned server-side.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Session is the authenticated identity currently active in the client
// process, together with the access token issued for it. At most one
// session is current at a time.
type Session struct {
	Identity Identity `json:"identity"`
	Token    string   `json:"-"`
}
