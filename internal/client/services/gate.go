package services

import "github.com/dmitrijs2005/ecoscan/internal/client/models"

// Allow is the access gate evaluated before any protected view or command.
// It is a pure predicate: nil session is always denied, and requiresAdmin
// additionally demands the admin role. Callers must treat a denial as
// all-or-nothing and fall back to the login entry point.
func Allow(session *models.Session, requiresAdmin bool) bool {
	if session == nil {
		return false
	}
	if requiresAdmin {
		return session.Identity.IsAdmin()
	}
	return true
}
