package ports

// SessionStore holds at most one bearer token between invocations. Validity
// is never checked locally; the remote API accepts or rejects it per request.
type SessionStore interface {
	SetToken(token string) error
	Token() (string, bool, error)
	Clear() error
}
