// Package bridge runs the NLG gateway as a child process of another runtime.
//
// The supervisor takes the listening port as its only positional argument,
// starts the gateway, prints a single confirmation line on stdout and then
// blocks reading stdin. When stdin reaches end of stream or fails (the parent
// closed the pipe or died) the gateway is drained and the process exits with
// status 0. Stdin carries no commands; its content is discarded.
//
// Exit codes: 0 after stdin closure, a signal or --help; 1 when the port
// argument is missing; 2 for any other failure.
package bridge
