package launcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/viant/nlgbridge"
)

type readResult struct {
	line string
	err  error
}

// Launch starts the bridge on an ephemeral port and connects to its gateway.
// ctx also scopes the client connection.
func Launch(ctx context.Context, options *Options) (*Gateway, error) {
	if options == nil || options.Command == "" {
		return nil, fmt.Errorf("command is required")
	}
	options.Init()

	args := append(append([]string{}, options.Args...), "0")
	cmd := exec.Command(options.Command, args...)
	cmd.Env = append(os.Environ(), options.Env...)
	cmd.Stderr = options.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %v: %w", options.Command, err)
	}
	ret := &Gateway{
		cmd:         cmd,
		stdin:       stdin,
		stopTimeout: options.StopTimeout,
		exited:      make(chan struct{}),
	}

	lines := make(chan readResult, 1)
	go func() {
		reader := bufio.NewReader(stdout)
		line, err := reader.ReadString('\n')
		lines <- readResult{line: line, err: err}
		// the bridge prints nothing else; drain so it never blocks on stdout
		_, _ = io.Copy(io.Discard, reader)
		ret.exitErr = cmd.Wait()
		close(ret.exited)
	}()

	port, err := waitForPort(ctx, lines, options.StartTimeout)
	if err != nil {
		ret.kill()
		return nil, err
	}
	ret.Port = port
	ret.URL = "http://" + net.JoinHostPort(options.Host, strconv.Itoa(port))
	ret.transport, err = nlgbridge.NewTransport(ctx, &nlgbridge.ClientOptions{URL: ret.URL, Transport: options.Transport})
	if err != nil {
		ret.kill()
		return nil, err
	}
	return ret, nil
}

func waitForPort(ctx context.Context, lines <-chan readResult, timeout time.Duration) (int, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case result := <-lines:
		if result.line == "" && result.err != nil {
			if errors.Is(result.err, io.EOF) {
				return 0, ErrExited
			}
			return 0, fmt.Errorf("failed to read bridge output: %w", result.err)
		}
		return ParsePort(result.line)
	case <-timer.C:
		return 0, ErrTimeout
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}
