// Package httpserver exposes the proof registry over HTTP.
//
// The server wires a chi router with request logging, health and drain
// endpoints, optional pprof, and a Prometheus metrics sidecar on a separate
// listener. All registry semantics live in the registry package; handlers
// only translate between wire types and registry calls and map registry
// errors to status codes.
package httpserver
