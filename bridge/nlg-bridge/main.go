// Command nlg-bridge exposes the NLG entry point over the JSON-RPC gateway on
// the port given as its only argument, and exits when its stdin closes.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/nlgbridge/bridge"
	"github.com/viant/nlgbridge/nlg"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := bridge.Main(ctx, os.Args[1:], nlg.New(), os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
