package bridge

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWatchInput(t *testing.T) {
	t.Run("end of stream", func(t *testing.T) {
		done := WatchInput(strings.NewReader("first\nsecond\n" + strings.Repeat("x", 1<<17)))
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("watch did not report end of stream")
		}
	})

	t.Run("lines keep it running", func(t *testing.T) {
		reader, writer := io.Pipe()
		done := WatchInput(reader)
		_, err := writer.Write([]byte("hello\n"))
		assert.NoError(t, err)
		select {
		case <-done:
			t.Fatal("watch stopped on a line of input")
		case <-time.After(100 * time.Millisecond):
		}
		_ = writer.Close()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("watch did not report closure")
		}
	})

	t.Run("read failure", func(t *testing.T) {
		reader, writer := io.Pipe()
		done := WatchInput(reader)
		broken := errors.New("broken pipe")
		_ = writer.CloseWithError(broken)
		select {
		case err := <-done:
			assert.ErrorIs(t, err, broken)
		case <-time.After(2 * time.Second):
			t.Fatal("watch did not report failure")
		}
	})
}
