// Package server runs the HTTP facade of the loyalty keeper.
//
// It owns the listener lifecycle: startup, waiting for cancellation of the
// caller's context and graceful shutdown of in-flight requests.
package server
