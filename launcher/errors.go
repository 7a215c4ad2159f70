package launcher

import "errors"

var (
	ErrNoPort  = errors.New("no port in bridge output")
	ErrExited  = errors.New("bridge exited before reporting its port")
	ErrTimeout = errors.New("bridge did not report its port in time")
)
