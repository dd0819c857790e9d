package ports

// TokenService issues and verifies stateless session tokens.
// Validity is determined purely by signature and expiry; there is no
// server-side session state.
type TokenService interface {
	// Issue produces a signed, time-limited token embedding the user id.
	Issue(userID string) (string, error)

	// Verify checks signature and expiry and returns the embedded user id.
	// Any malformed, tampered, or expired token is a single error outcome.
	Verify(token string) (string, error)
}
