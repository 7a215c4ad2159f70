package bridge

import "errors"

var (
	ErrMissingPort = errors.New("missing port argument")
	ErrInvalidPort = errors.New("invalid port")
)

// missingPortMessage is what the parent runtime sees on stderr.
const missingPortMessage = "You must specify a port number."
