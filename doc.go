// Package nlgbridge exposes the NLG entry point to other runtimes over a
// JSON-RPC gateway.
//
// The package glues the gateway package with the viant/jsonrpc transports and
// offers option structures that can be populated from CLI flags or
// configuration files:
//  1. NewGateway – returns a configured gateway server for an entry point and
//  2. NewTransport – returns a client transport connected to a running gateway.
//
// Example:
//
//	srv, _ := nlgbridge.NewGateway(nlg.New(), &nlgbridge.GatewayOptions{Port: 25333})
//	_ = srv.Start(ctx)
//	rpc, _ := nlgbridge.NewTransport(ctx, &nlgbridge.ClientOptions{URL: "http://127.0.0.1:25333"})
//
// The bridge command (bridge/nlg-bridge) wraps NewGateway with the process
// lifecycle, and the launcher package starts that command from another program.
package nlgbridge
