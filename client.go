package nlgbridge

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/jsonrpc/transport"
	"github.com/viant/jsonrpc/transport/client/http/sse"
	"github.com/viant/jsonrpc/transport/client/http/streamable"
)

const (
	TransportSSE        = "sse"
	TransportStreamable = "streamable"
)

// ClientOptions defines options for connecting to a running gateway.
type ClientOptions struct {
	// URL is the gateway base URL, e.g. http://127.0.0.1:25333
	URL           string `yaml:"url" json:"url" short:"u" long:"url" description:"gateway url"`
	Transport     string `yaml:"transport,omitempty" json:"transport,omitempty" short:"T" long:"transport" description:"gateway transport" choice:"sse" choice:"streamable"`
	SSEURI        string `yaml:"sseURI,omitempty" json:"sseURI,omitempty"`
	StreamableURI string `yaml:"streamableURI,omitempty" json:"streamableURI,omitempty"`
}

func (c *ClientOptions) Init() {
	if c.Transport == "" {
		c.Transport = TransportSSE
	}
	if c.SSEURI == "" {
		c.SSEURI = "/sse"
	}
	if c.StreamableURI == "" {
		c.StreamableURI = "/rpc"
	}
}

// Endpoint returns the transport specific endpoint URL.
func (c *ClientOptions) Endpoint() (string, error) {
	base := strings.TrimRight(c.URL, "/")
	switch c.Transport {
	case TransportSSE:
		return base + c.SSEURI, nil
	case TransportStreamable:
		return base + c.StreamableURI, nil
	default:
		return "", fmt.Errorf("unsupported transport: %v", c.Transport)
	}
}

// NewTransport creates a JSON-RPC client transport connected to a gateway.
func NewTransport(ctx context.Context, options *ClientOptions) (transport.Transport, error) {
	if options == nil || options.URL == "" {
		return nil, fmt.Errorf("URL is required")
	}
	options.Init()
	endpoint, err := options.Endpoint()
	if err != nil {
		return nil, err
	}
	switch options.Transport {
	case TransportStreamable:
		ret, err := streamable.New(ctx, endpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to create streamable transport: %w", err)
		}
		return ret, nil
	default:
		ret, err := sse.New(ctx, endpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to create SSE transport: %w", err)
		}
		return ret, nil
	}
}
