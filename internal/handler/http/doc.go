// Package http implements the HTTP facade of the loyalty keeper.
//
// It exposes the record cache, the lifecycle operations and the operation
// statuses to a presentation layer over a chi router. Request tracing,
// access logging, metrics and wallet identification are handled in this
// package before requests are delegated to the service layer.
package http
