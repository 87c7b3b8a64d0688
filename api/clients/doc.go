// Package clients provides typed HTTP clients for the registry API, plus
// testify mocks for consumers that want to test against the client
// interface without a running server.
package clients
