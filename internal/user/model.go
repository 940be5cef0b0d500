// Package user provides the session domain model.
package user

// AuthStatus is the client's view of the current session.
type AuthStatus string

const (
	// Auth means the stored token was accepted by the server.
	Auth AuthStatus = "AUTH"
	// NoAuth means there is no valid session.
	NoAuth AuthStatus = "NO_AUTH"
	// Unknown means no session check has completed yet.
	Unknown AuthStatus = "UNKNOWN"
)

// Profile is the authenticated user's account data, returned by the
// login and session-check endpoints.
type Profile struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsPro     bool   `json:"isPro"`
	Email     string `json:"email"`
	Token     string `json:"token"`
}
