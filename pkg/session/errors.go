package session

import "fmt"

// AuthError wraps a credential login failure. It is the one error class the
// provider reports typed, so callers can tell an authentication failure from
// an ordinary operation failure.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
