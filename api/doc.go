// Package api defines the wire types shared by the HTTP server and its
// clients: request and response bodies, the caller identity header, and the
// conversion between wire payloads and registry types.
package api
