package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/syncmap"
)

// Server exposes an entry point over JSON-RPC
type Server struct {
	registry   *Registry
	entryPoint EntryPoint
	name       string
	version    string
	instanceID string
	logger     *slog.Logger

	httpServer

	mux          sync.Mutex
	listener     net.Listener
	startedAt    time.Time
	baseCtx      context.Context
	cancelBase   context.CancelFunc
	shuttingDown atomic.Bool
}

// NewHandler creates a new handler instance, one per transport session.
func (s *Server) NewHandler(_ context.Context, _ transport.Transport) transport.Handler {
	return &Handler{
		Server:         s,
		activeContexts: syncmap.NewMap[string, *activeContext](),
	}
}

// Registry returns the dispatch table
func (s *Server) Registry() *Registry {
	return s.registry
}

// Info describes the gateway; Port is zero until Listen succeeds.
func (s *Server) Info() Info {
	s.mux.Lock()
	startedAt := s.startedAt
	s.mux.Unlock()
	return Info{
		Name:       s.name,
		Version:    s.version,
		EntryPoint: s.entryPoint.Name(),
		InstanceID: s.instanceID,
		Port:       s.Port(),
		StartedAt:  startedAt,
	}
}

// Listen binds the gateway listener. Port 0 selects an ephemeral port.
func (s *Server) Listen(ctx context.Context) error {
	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	listener, err := (&net.ListenConfig{}).Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %v: %w", addr, err)
	}
	s.mux.Lock()
	s.listener = listener
	s.startedAt = time.Now().UTC()
	s.mux.Unlock()
	return nil
}

// Port returns the bound port or 0 when not listening.
func (s *Server) Port() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.listener == nil {
		return 0
	}
	if addr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}

// Addr returns the bound listener address.
func (s *Server) Addr() net.Addr {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve serves requests on the bound listener until Shutdown.
func (s *Server) Serve() error {
	s.mux.Lock()
	listener := s.listener
	s.mux.Unlock()
	if listener == nil {
		return ErrNotListening
	}
	s.logger.Info("gateway serving",
		slog.String("addr", listener.Addr().String()),
		slog.String("entryPoint", s.entryPoint.Name()),
		slog.String("instanceId", s.instanceID),
	)
	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Start binds the listener and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	if err := s.Listen(ctx); err != nil {
		return err
	}
	go func() {
		if err := s.Serve(); err != nil {
			s.logger.Error("gateway serve failed", slog.String("error", err.Error()))
		}
	}()
	return nil
}

// Shutdown cancels in-flight calls and drains the HTTP server. Connections
// still open when ctx expires are closed.
func (s *Server) Shutdown(ctx context.Context) error {
	if !s.shuttingDown.CompareAndSwap(false, true) {
		return nil
	}
	s.cancelBase()
	err := s.server.Shutdown(ctx)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		s.logger.Warn("gateway drain timed out, closing connections")
		err = s.server.Close()
	}
	s.mux.Lock()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.mux.Unlock()
	s.logger.Info("gateway stopped", slog.String("instanceId", s.instanceID))
	return err
}

// New creates a new Server instance
func New(options ...Option) (*Server, error) {
	s := &Server{
		registry:   NewRegistry(),
		name:       "NLG",
		version:    "0.1",
		instanceID: uuid.NewString(),
		logger:     slog.Default(),
		httpServer: httpServer{
			host:          "127.0.0.1",
			sseURI:        "/sse",
			sseMessageURI: "/message",
			streamableURI: "/rpc",
		},
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	if s.entryPoint == nil {
		return nil, ErrNoEntryPoint
	}
	if err := s.registerBuiltins(); err != nil {
		return nil, err
	}
	if err := s.entryPoint.Register(s.registry); err != nil {
		return nil, fmt.Errorf("register %v: %w", s.entryPoint.Name(), err)
	}
	s.baseCtx, s.cancelBase = context.WithCancel(context.Background())
	s.server = s.newHTTPServer()
	return s, nil
}
