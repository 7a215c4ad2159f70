package nlgbridge

import (
	"fmt"
	"log/slog"

	"github.com/viant/nlgbridge/gateway"
)

// GatewayOptions defines options for configuring a gateway server.
type GatewayOptions struct {
	Name          string `yaml:"name" json:"name" koanf:"name"`
	Version       string `yaml:"version" json:"version" koanf:"version"`
	Host          string `yaml:"host" json:"host" koanf:"host"`
	Port          int    `yaml:"-" json:"-" koanf:"-"`
	SSEURI        string `yaml:"sseURI" json:"sseURI" koanf:"-"`
	SSEMessageURI string `yaml:"sseMessageURI" json:"sseMessageURI" koanf:"-"`
	StreamableURI string `yaml:"streamableURI" json:"streamableURI" koanf:"-"`

	// AllowedOrigins lists browser origins accepted besides loopback ones.
	AllowedOrigins []string `yaml:"allowedOrigins" json:"allowedOrigins" koanf:"-"`

	Logger *slog.Logger `yaml:"-" json:"-" koanf:"-"`
}

// NewGateway creates a gateway server exposing entryPoint.
func NewGateway(entryPoint gateway.EntryPoint, options *GatewayOptions) (*gateway.Server, error) {
	if entryPoint == nil {
		return nil, fmt.Errorf("entry point was nil")
	}
	serverOptions := []gateway.Option{gateway.WithEntryPoint(entryPoint)}
	if options != nil {
		serverOptions = append(serverOptions,
			gateway.WithInfo(options.Name, options.Version),
			gateway.WithAddress(options.Host, options.Port),
			gateway.WithSSEURI(options.SSEURI),
			gateway.WithSSEMessageURI(options.SSEMessageURI),
			gateway.WithStreamableURI(options.StreamableURI),
			gateway.WithAllowedOrigins(options.AllowedOrigins...),
			gateway.WithLogger(options.Logger),
		)
	}
	return gateway.New(serverOptions...)
}
