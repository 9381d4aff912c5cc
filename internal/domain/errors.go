package domain

import "errors"

// Input errors: the caller asked for something that does not exist. Surfaced
// directly, never retried.
var (
	ErrUnknownTheme   = errors.New("unknown theme")
	ErrInvalidSession = errors.New("invalid session id")
	ErrSessionExpired = errors.New("session expired")
)

// ErrNoMatches is a legitimate outcome of a legitimate query: valid theme,
// zero qualifying products. Distinct from ErrUnknownTheme so callers can tell
// a user-correctable input apart from an empty shelf.
var ErrNoMatches = errors.New("no matching products")

// ErrNoAnswers rejects result generation on a session with zero recorded
// answers. Failing fast beats returning a degraded empty personality.
var ErrNoAnswers = errors.New("no answers recorded")
