package bridge

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/viant/nlgbridge"
	"github.com/viant/nlgbridge/gateway"
	"golang.org/x/sync/errgroup"
)

// Supervisor owns the bridge process lifetime: it starts the gateway and
// stops it once the parent closes stdin.
type Supervisor struct {
	EntryPoint      gateway.EntryPoint
	Gateway         nlgbridge.GatewayOptions
	Stdin           io.Reader
	Stdout          io.Writer
	Logger          *slog.Logger
	ShutdownTimeout time.Duration
}

// Run binds the gateway on port, prints the confirmation line and blocks
// until stdin closes, ctx is cancelled or the gateway fails. Stdin closure and
// cancellation are a normal shutdown and return nil.
func (s *Supervisor) Run(ctx context.Context, port int) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	options := s.Gateway
	options.Port = port
	options.Logger = logger
	srv, err := nlgbridge.NewGateway(s.EntryPoint, &options)
	if err != nil {
		return fmt.Errorf("create gateway: %w", err)
	}
	if err := srv.Listen(ctx); err != nil {
		return err
	}
	info := srv.Info()
	if _, err := fmt.Fprintf(s.Stdout, "%s Gateway Server started on port %d\n", info.Name, info.Port); err != nil {
		_ = srv.Shutdown(context.Background())
		return fmt.Errorf("write confirmation: %w", err)
	}

	inputClosed := WatchInput(s.Stdin)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Serve)
	g.Go(func() error {
		select {
		case err := <-inputClosed:
			if err != nil {
				logger.Info("stdin failed, shutting down", slog.String("error", err.Error()))
			} else {
				logger.Info("stdin closed, shutting down")
			}
		case <-gctx.Done():
			logger.Info("shutting down", slog.String("reason", context.Cause(gctx).Error()))
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Supervisor) shutdownTimeout() time.Duration {
	if s.ShutdownTimeout > 0 {
		return s.ShutdownTimeout
	}
	return 2 * time.Second
}
