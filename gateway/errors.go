package gateway

import "errors"

var (
	ErrNoEntryPoint    = errors.New("no entry point specified")
	ErrDuplicateMethod = errors.New("method already registered")
	ErrInvalidMethod   = errors.New("invalid method")
	ErrNotListening    = errors.New("gateway is not listening")
)
