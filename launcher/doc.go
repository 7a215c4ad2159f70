// Package launcher starts the bridge command from another program and talks to
// the gateway it exposes.
//
// Launch runs the command with port 0, reads the bound port from the first
// line the child prints on stdout and connects a JSON-RPC client transport.
// The child's stdin stays open for as long as the Gateway is in use; Close
// closes it, which makes the child drain and exit, and kills the child if it
// does not exit in time.
//
// Example:
//
//	gw, err := launcher.Launch(ctx, &launcher.Options{Command: "nlg-bridge"})
//	if err != nil {
//		return err
//	}
//	defer gw.Close()
//	info, err := gw.Info(ctx)
package launcher
