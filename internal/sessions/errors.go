package sessions

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidID       = errors.New("invalid session id")
)
