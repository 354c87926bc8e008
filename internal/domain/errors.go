package domain

import "errors"

// Failure kinds shared by storage and services. Handlers map these to
// distinct user-facing messages instead of crashing the chat loop.
var (
	ErrNotFound      = errors.New("not found")
	ErrParse         = errors.New("parse error")
	ErrIO            = errors.New("io error")
	ErrLimitExceeded = errors.New("word limit exceeded")
	ErrConflict      = errors.New("already exists")
	ErrBadWord       = errors.New("word is not allowed")
)
