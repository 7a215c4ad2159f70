package gateway

import (
	"context"
	"encoding/json"
	"net"
	"net/http"

	"github.com/viant/jsonrpc/transport/server/http/sse"
	"github.com/viant/jsonrpc/transport/server/http/streamable"
)

const healthURI = "/healthz"

type httpServer struct {
	host          string
	port          int
	sseURI        string
	sseMessageURI string
	streamableURI string
	origins       []string
	server        *http.Server
}

type health struct {
	Status     string `json:"status"`
	EntryPoint string `json:"entryPoint"`
	InstanceID string `json:"instanceId"`
}

// HTTP returns the gateway HTTP handler: SSE and streamable JSON-RPC
// transports plus a health endpoint.
func (s *Server) HTTP() http.Handler {
	sseHandler := sse.New(s.NewHandler,
		sse.WithURI(s.sseURI),
		sse.WithMessageURI(s.sseMessageURI),
	)
	streamingHandler := streamable.New(s.NewHandler,
		streamable.WithURI(s.streamableURI),
	)
	mux := http.NewServeMux()
	mux.HandleFunc(healthURI, s.handleHealth)

	middlewareHandlers := []Middleware{loggingMiddleware(s.logger), originMiddleware(s.origins)}
	sseChain := ChainMiddlewareHandlers(sseHandler, middlewareHandlers...)
	streamChain := ChainMiddlewareHandlers(streamingHandler, middlewareHandlers...)
	mux.Handle(s.sseURI, sseChain)
	mux.Handle(s.sseMessageURI, sseChain)
	mux.Handle(s.streamableURI, streamChain)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	status := health{Status: "healthy", EntryPoint: s.entryPoint.Name(), InstanceID: s.instanceID}
	if s.shuttingDown.Load() {
		status.Status = "shutting_down"
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(status)
}

func (s *Server) newHTTPServer() *http.Server {
	return &http.Server{
		Handler: s.HTTP(),
		BaseContext: func(net.Listener) context.Context {
			return s.baseCtx
		},
	}
}
