package gateway

import (
	"fmt"
	"log/slog"
)

// Option is a function that configures the server.
type Option func(s *Server) error

// WithEntryPoint sets the exposed object.
func WithEntryPoint(entryPoint EntryPoint) Option {
	return func(s *Server) error {
		s.entryPoint = entryPoint
		return nil
	}
}

// WithAddress sets the listener host and port; port 0 selects an ephemeral port.
func WithAddress(host string, port int) Option {
	return func(s *Server) error {
		if port < 0 || port > 65535 {
			return fmt.Errorf("invalid port: %v", port)
		}
		if host != "" {
			s.host = host
		}
		s.port = port
		return nil
	}
}

// WithInfo sets the gateway name and version reported by gateway/info.
func WithInfo(name, version string) Option {
	return func(s *Server) error {
		if name != "" {
			s.name = name
		}
		if version != "" {
			s.version = version
		}
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// WithSSEURI sets the SSE stream URI.
func WithSSEURI(uri string) Option {
	return func(s *Server) error {
		if uri != "" {
			s.sseURI = uri
		}
		return nil
	}
}

// WithSSEMessageURI sets the SSE message URI.
func WithSSEMessageURI(uri string) Option {
	return func(s *Server) error {
		if uri != "" {
			s.sseMessageURI = uri
		}
		return nil
	}
}

// WithStreamableURI sets the streamable HTTP URI.
func WithStreamableURI(uri string) Option {
	return func(s *Server) error {
		if uri != "" {
			s.streamableURI = uri
		}
		return nil
	}
}

// WithAllowedOrigins sets browser origins accepted by the JSON-RPC endpoints.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) error {
		s.origins = append(s.origins, origins...)
		return nil
	}
}
