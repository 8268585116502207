// Package server wires and runs the application's HTTP transport.
//
// It covers the server lifecycle: startup, OS signal handling, and
// graceful shutdown.
package server
