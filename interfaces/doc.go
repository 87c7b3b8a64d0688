// Package interfaces defines the core types and contracts for the proof
// registry system. It provides the boundary between components without
// implementation details: account and proof identifiers, proof and verifier
// records, the pluggable verification predicate, the event log, and the
// content-addressed storage backends used for archival.
package interfaces
