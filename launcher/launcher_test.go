package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/jsonrpc"
	"github.com/viant/nlgbridge"
	"github.com/viant/nlgbridge/bridge"
	"github.com/viant/nlgbridge/nlg"
)

const helperEnv = "NLGBRIDGE_TEST_HELPER"

// TestMain turns the test binary into the bridge command when re-executed
// by Launch.
func TestMain(m *testing.M) {
	switch os.Getenv(helperEnv) {
	case "bridge":
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
		code := bridge.Main(ctx, os.Args[1:], nlg.New(), os.Stdin, os.Stdout, os.Stderr)
		stop()
		os.Exit(code)
	case "silent":
		// never reports a port
		time.Sleep(time.Minute)
		os.Exit(0)
	case "garbage":
		os.Stdout.WriteString("ready\n")
		time.Sleep(time.Minute)
		os.Exit(0)
	case "crash":
		os.Exit(3)
	}
	os.Exit(m.Run())
}

func helperOptions(mode string) *Options {
	return &Options{
		Command:      os.Args[0],
		Env:          []string{helperEnv + "=" + mode},
		StartTimeout: 10 * time.Second,
		StopTimeout:  5 * time.Second,
	}
}

func TestLaunch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	gw, err := Launch(ctx, helperOptions("bridge"))
	if !assert.NoError(t, err) {
		return
	}
	assert.NotZero(t, gw.Port)
	assert.Equal(t, -1, gw.ExitCode())

	assert.NoError(t, gw.Ping(ctx))

	info, err := gw.Info(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, nlg.Name, info.EntryPoint)
		assert.Equal(t, gw.Port, info.Port)
		assert.NotEmpty(t, info.InstanceID)
	}

	methods, err := gw.Methods(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, nlg.Name, methods.EntryPoint)
		for _, method := range methods.Methods {
			assert.True(t, method.Builtin, method.Name)
		}
	}

	err = gw.Call(ctx, "generate", map[string]string{"subject": "you"}, nil)
	var rpcErr *jsonrpc.Error
	if assert.True(t, errors.As(err, &rpcErr)) {
		assert.Equal(t, jsonrpc.MethodNotFound, rpcErr.Code)
	}

	assert.NoError(t, gw.Close())
	assert.NoError(t, gw.Close())
	assert.Equal(t, 0, gw.ExitCode())
	assert.NoError(t, gw.Wait())
}

func TestLaunch_Streamable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	options := helperOptions("bridge")
	options.Transport = nlgbridge.TransportStreamable
	gw, err := Launch(ctx, options)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, fmt.Sprintf("http://127.0.0.1:%d", gw.Port), gw.URL)
	assert.NoError(t, gw.Ping(ctx))

	info, err := gw.Info(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, nlg.Name, info.EntryPoint)
		assert.Equal(t, gw.Port, info.Port)
	}

	assert.NoError(t, gw.Close())
	assert.Equal(t, 0, gw.ExitCode())
}

func TestLaunch_Failures(t *testing.T) {
	var testCases = []struct {
		description string
		mode        string
		timeout     time.Duration
		expectErr   error
	}{
		{description: "exits before reporting", mode: "crash", expectErr: ErrExited},
		{description: "no port in first line", mode: "garbage", expectErr: ErrNoPort},
		{description: "never reports", mode: "silent", timeout: 300 * time.Millisecond, expectErr: ErrTimeout},
	}
	for _, testCase := range testCases {
		options := helperOptions(testCase.mode)
		if testCase.timeout > 0 {
			options.StartTimeout = testCase.timeout
		}
		started := time.Now()
		_, err := Launch(context.Background(), options)
		assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
		assert.Less(t, time.Since(started), 8*time.Second, testCase.description)
	}

	_, err := Launch(context.Background(), &Options{})
	assert.Error(t, err)
}

func TestParsePort(t *testing.T) {
	var testCases = []struct {
		description string
		line        string
		expect      int
		expectErr   bool
	}{
		{description: "confirmation line", line: "NLG Gateway Server started on port 25333\n", expect: 25333},
		{description: "bare port", line: "41000", expect: 41000},
		{description: "no digits", line: "ready", expectErr: true},
		{description: "zero", line: "started on port 0", expectErr: true},
		{description: "out of range", line: "port 700000", expectErr: true},
		{description: "empty", line: "", expectErr: true},
	}
	for _, testCase := range testCases {
		actual, err := ParsePort(testCase.line)
		if testCase.expectErr {
			assert.ErrorIs(t, err, ErrNoPort, testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}
