// Package guard decides whether protected views may be shown.
package guard

import "sixcities/internal/user"

// Allow reports whether protected content may be shown for the given
// session status. Unknown passes through only while a session check is
// actually in flight; a settled Unknown means the caller should send
// the user to login.
func Allow(status user.AuthStatus, checking bool) bool {
	switch status {
	case user.Auth:
		return true
	case user.Unknown:
		return checking
	}
	return false
}
