package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/syncmap"
)

// Handler dispatches JSON-RPC messages of one transport session to the registry.
type Handler struct {
	*Server
	activeContexts *syncmap.Map[string, *activeContext]
}

// Serve handles incoming JSON-RPC requests
func (h *Handler) Serve(parent context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	if jsonrpc.Version != request.Jsonrpc {
		response.Error = jsonrpc.NewInvalidRequest("invalid JSON-RPC version", nil)
		return
	}
	method, ok := h.registry.Lookup(request.Method)
	if !ok {
		response.Error = jsonrpc.NewMethodNotFound(fmt.Sprintf("method: %v not found", request.Method), request.Params)
		return
	}

	key := requestKey(request.Id)
	activeContext, ctx := newActiveContext(parent)
	h.activeContexts.Put(key, activeContext)
	defer h.cancelOperation(key)

	started := time.Now()
	result, rpcErr := h.invoke(ctx, request.Method, method, request.Params)
	h.setResponse(response, result, rpcErr)
	h.logger.Debug("gateway call",
		slog.String("method", request.Method),
		slog.String("id", key),
		slog.Duration("elapsed", time.Since(started)),
		slog.Bool("failed", response.Error != nil),
	)
}

func (h *Handler) invoke(ctx context.Context, name string, method Method, params json.RawMessage) (result interface{}, rpcErr *jsonrpc.Error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("gateway method panicked", slog.String("method", name), slog.Any("panic", r))
			result = nil
			rpcErr = jsonrpc.NewInternalError(fmt.Sprintf("method %v failed: %v", name, r), nil)
		}
	}()
	return method(ctx, params)
}

func (h *Handler) setResponse(response *jsonrpc.Response, result interface{}, rpcError *jsonrpc.Error) {
	if rpcError != nil {
		response.Error = rpcError
		return
	}
	var err error
	response.Result, err = json.Marshal(result)
	if err != nil {
		response.Error = jsonrpc.NewInternalError(err.Error(), nil)
	}
}

func (h *Handler) cancelOperation(key string) {
	if active, ok := h.activeContexts.Get(key); ok {
		active.CancelFunc()
		h.activeContexts.Delete(key)
	}
}

// OnNotification handles incoming JSON-RPC notifications
func (h *Handler) OnNotification(ctx context.Context, notification *jsonrpc.Notification) {
	switch notification.Method {
	case MethodNotificationCancel:
		if rpcErr := h.Cancel(ctx, notification); rpcErr != nil {
			h.logger.Warn("invalid cancel notification", slog.String("error", rpcErr.Message))
		}
	default:
		h.logger.Debug("ignored notification", slog.String("method", notification.Method))
	}
}
