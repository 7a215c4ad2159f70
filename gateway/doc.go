// Package gateway exposes a single entry point object over JSON-RPC 2.0.
//
// A Server binds a TCP listener and serves the viant/jsonrpc HTTP transports
// (SSE and streamable HTTP). Incoming requests are dispatched through a
// Registry, an explicit table mapping method names to handlers. The entry
// point fills the table when the server is built; a few built-in methods
// (ping, gateway/info, gateway/methods) are always present.
//
// Example:
//
//	srv, err := gateway.New(
//		gateway.WithEntryPoint(nlg.New()),
//		gateway.WithAddress("127.0.0.1", 25333),
//	)
//	if err != nil {
//		return err
//	}
//	if err := srv.Start(ctx); err != nil {
//		return err
//	}
//	defer srv.Shutdown(context.Background())
package gateway
