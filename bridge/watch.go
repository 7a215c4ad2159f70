package bridge

import (
	"bufio"
	"errors"
	"io"
)

// WatchInput reads r line by line until end of stream or a read failure and
// then reports on the returned channel: nil for end of stream, the read error
// otherwise. Line content is discarded. A blocking read cannot be cancelled,
// so the goroutine lives until r is closed.
func WatchInput(r io.Reader) <-chan error {
	done := make(chan error, 1)
	go func() {
		reader := bufio.NewReader(r)
		for {
			if _, _, err := reader.ReadLine(); err != nil {
				if errors.Is(err, io.EOF) {
					err = nil
				}
				done <- err
				return
			}
		}
	}()
	return done
}
