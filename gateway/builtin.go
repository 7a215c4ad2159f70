package gateway

import (
	"context"
	"time"

	"github.com/viant/jsonrpc"
)

const (
	MethodPing               = "ping"
	MethodGatewayInfo        = "gateway/info"
	MethodGatewayMethods     = "gateway/methods"
	MethodNotificationCancel = "notifications/cancelled"
)

// Info describes a running gateway.
type Info struct {
	Name       string    `json:"name"`
	Version    string    `json:"version"`
	EntryPoint string    `json:"entryPoint"`
	InstanceID string    `json:"instanceId"`
	Port       int       `json:"port"`
	StartedAt  time.Time `json:"startedAt"`
}

// MethodsResult lists the dispatch table of a gateway.
type MethodsResult struct {
	EntryPoint string       `json:"entryPoint"`
	Methods    []MethodInfo `json:"methods"`
}

type PingResult struct{}

type emptyParams struct{}

func (s *Server) registerBuiltins() error {
	builtins := []struct {
		info   MethodInfo
		method Method
	}{
		{MethodInfo{Name: MethodPing, Description: "liveness check"}, NewMethod(MethodPing, s.ping)},
		{MethodInfo{Name: MethodGatewayInfo, Description: "describes the running gateway"}, NewMethod(MethodGatewayInfo, s.describe)},
		{MethodInfo{Name: MethodGatewayMethods, Description: "lists the dispatch table"}, NewMethod(MethodGatewayMethods, s.listMethods)},
	}
	for _, builtin := range builtins {
		builtin.info.Builtin = true
		if err := s.registry.register(builtin.info, builtin.method); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) ping(_ context.Context, _ *emptyParams) (*PingResult, *jsonrpc.Error) {
	return &PingResult{}, nil
}

func (s *Server) describe(_ context.Context, _ *emptyParams) (*Info, *jsonrpc.Error) {
	info := s.Info()
	return &info, nil
}

func (s *Server) listMethods(_ context.Context, _ *emptyParams) (*MethodsResult, *jsonrpc.Error) {
	return &MethodsResult{EntryPoint: s.entryPoint.Name(), Methods: s.registry.Methods()}, nil
}
