package launcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"time"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/nlgbridge/gateway"
)

// Gateway is a launched bridge process and a client connected to it.
type Gateway struct {
	Port int
	URL  string

	transport   transport.Transport
	cmd         *exec.Cmd
	stdin       io.WriteCloser
	stopTimeout time.Duration
	exited      chan struct{}
	exitErr     error
	closeOnce   sync.Once
}

// Call invokes method with params and decodes the result into result (which
// may be nil). JSON-RPC failures are returned as *jsonrpc.Error.
func (g *Gateway) Call(ctx context.Context, method string, params interface{}, result interface{}) error {
	request, err := jsonrpc.NewRequest(method, params)
	if err != nil {
		return fmt.Errorf("failed to build %v request: %w", method, err)
	}
	response, err := g.transport.Send(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to call %v: %w", method, err)
	}
	if response.Error != nil {
		return response.Error
	}
	if result == nil || len(response.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(response.Result, result); err != nil {
		return fmt.Errorf("failed to decode %v result: %w", method, err)
	}
	return nil
}

// Ping checks that the gateway answers.
func (g *Gateway) Ping(ctx context.Context) error {
	return g.Call(ctx, gateway.MethodPing, nil, nil)
}

// Info returns the gateway description.
func (g *Gateway) Info(ctx context.Context) (*gateway.Info, error) {
	info := &gateway.Info{}
	if err := g.Call(ctx, gateway.MethodGatewayInfo, nil, info); err != nil {
		return nil, err
	}
	return info, nil
}

// Methods returns the gateway dispatch table.
func (g *Gateway) Methods(ctx context.Context) (*gateway.MethodsResult, error) {
	result := &gateway.MethodsResult{}
	if err := g.Call(ctx, gateway.MethodGatewayMethods, nil, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Close closes the bridge stdin, which makes it shut down, and waits for the
// process; the process is killed when it outlives the stop timeout.
func (g *Gateway) Close() error {
	var err error
	g.closeOnce.Do(func() {
		_ = g.stdin.Close()
		timer := time.NewTimer(g.stopTimeout)
		defer timer.Stop()
		select {
		case <-g.exited:
		case <-timer.C:
			g.kill()
			err = fmt.Errorf("bridge did not stop within %v, killed", g.stopTimeout)
		}
	})
	return err
}

// Exited is closed once the bridge process has exited.
func (g *Gateway) Exited() <-chan struct{} {
	return g.exited
}

// Wait blocks until the bridge exits and returns its exit error.
func (g *Gateway) Wait() error {
	<-g.exited
	return g.exitErr
}

// ExitCode returns the bridge exit status, or -1 while it is running.
func (g *Gateway) ExitCode() int {
	select {
	case <-g.exited:
		return g.cmd.ProcessState.ExitCode()
	default:
		return -1
	}
}

func (g *Gateway) kill() {
	_ = g.stdin.Close()
	if g.cmd.Process != nil {
		_ = g.cmd.Process.Kill()
	}
	<-g.exited
}
