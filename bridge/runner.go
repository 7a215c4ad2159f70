package bridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jessevdk/go-flags"
	"github.com/viant/nlgbridge/gateway"
)

// Main runs the bridge command and returns the process exit code.
func Main(ctx context.Context, args []string, entryPoint gateway.EntryPoint, stdin io.Reader, stdout, stderr io.Writer) int {
	options, err := ParseOptions(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	port, err := options.Port()
	if errors.Is(err, ErrMissingPort) {
		fmt.Fprintln(stderr, missingPortMessage)
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	cfg, err := LoadConfig(ctx, options.ConfigURL)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	cfg.Apply(options)
	logger := NewLogger(stderr, cfg.Log)

	supervisor := &Supervisor{
		EntryPoint:      entryPoint,
		Gateway:         cfg.Gateway,
		Stdin:           stdin,
		Stdout:          stdout,
		Logger:          logger,
		ShutdownTimeout: cfg.Shutdown.Timeout,
	}
	if err := supervisor.Run(ctx, port); err != nil {
		logger.Error("bridge failed", slog.String("error", err.Error()))
		return 2
	}
	return 0
}
