package auth

// TokenStore holds the bearer credential shared by every call to one upstream.
// Readers observe either the previous or the new token, never a partial one.
type TokenStore interface {
	// Token returns the current credential, "" before the first login.
	Token() string
	// SetToken replaces the credential wholesale.
	SetToken(token string)
}
