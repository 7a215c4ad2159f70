package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/viant/jsonrpc"
	"github.com/viant/nlgbridge/internal/collection"
)

// Method handles one JSON-RPC method; params holds the raw request params.
type Method func(ctx context.Context, params json.RawMessage) (interface{}, *jsonrpc.Error)

// MethodInfo describes a dispatch table entry.
type MethodInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Builtin     bool   `json:"builtin,omitempty"`
}

type entry struct {
	info   MethodInfo
	method Method
}

// Registry is the dispatch table mapping method names to handlers.
type Registry struct {
	entries *collection.SyncMap[string, *entry]
}

// Register adds a method under name.
func (r *Registry) Register(name, description string, method Method) error {
	return r.register(MethodInfo{Name: name, Description: description}, method)
}

func (r *Registry) register(info MethodInfo, method Method) error {
	if strings.TrimSpace(info.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidMethod)
	}
	if method == nil {
		return fmt.Errorf("%w: %v has no handler", ErrInvalidMethod, info.Name)
	}
	if !r.entries.PutIfAbsent(info.Name, &entry{info: info, method: method}) {
		return fmt.Errorf("%w: %v", ErrDuplicateMethod, info.Name)
	}
	return nil
}

// Lookup returns the method registered under name.
func (r *Registry) Lookup(name string) (Method, bool) {
	e, ok := r.entries.Get(name)
	if !ok {
		return nil, false
	}
	return e.method, true
}

// Methods returns the dispatch table sorted by name.
func (r *Registry) Methods() []MethodInfo {
	entries := r.entries.Values(func(a, b string) bool { return a < b })
	result := make([]MethodInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	return result
}

// RegisterMethod registers a typed method: params are decoded into I and the
// returned *O becomes the JSON-RPC result.
func RegisterMethod[I any, O any](registry *Registry, name, description string, fn func(ctx context.Context, input *I) (*O, *jsonrpc.Error)) error {
	if fn == nil {
		return fmt.Errorf("%w: %v has no handler", ErrInvalidMethod, name)
	}
	return registry.Register(name, description, NewMethod(name, fn))
}

// NewMethod adapts a typed function to Method.
func NewMethod[I any, O any](name string, fn func(ctx context.Context, input *I) (*O, *jsonrpc.Error)) Method {
	return func(ctx context.Context, params json.RawMessage) (interface{}, *jsonrpc.Error) {
		input := new(I)
		if len(params) > 0 && string(params) != "null" {
			if err := json.Unmarshal(params, input); err != nil {
				return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("invalid params for %v: %v", name, err), params)
			}
		}
		output, rpcErr := fn(ctx, input)
		if rpcErr != nil {
			return nil, rpcErr
		}
		return output, nil
	}
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{entries: collection.NewSyncMap[string, *entry]()}
}
