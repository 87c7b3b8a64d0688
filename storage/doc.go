// Package storage provides content-addressed archival storage with
// pluggable backends for the proof registry.
//
// The archiver persists committed proof records and event-log batches as
// content-addressed blobs identified by their SHA-256 hash. Backends:
//
//   - File system storage for local development and testing
//   - S3-compatible storage for cloud deployments
//   - IPFS storage for decentralized content
//   - Vault storage for deployments that already run Vault
//
// # Storage URI Format
//
// Storage backends are specified using URI format:
//
//	[scheme]://[auth@]host[:port][/path][?params]
//
// Supported URI schemes:
//
//   - file:///var/lib/proof-registry/archive/
//   - s3://bucket-name/prefix/?region=us-west-2
//   - ipfs://ipfs.example.com:5001/
//   - vault://vault.example.com:8200/secret/proof-registry?token=...
//
// # Content Addressing
//
// The content identifier is the SHA-256 hash of the data, so a blob stored
// through any backend resolves to the same ID through every other backend.
// Proof snapshots and event batches live in separate namespaces
// (interfaces.ProofType and interfaces.EventType).
//
// The MultiStorageBackend aggregates several backends: Store fans out to
// all available ones and Fetch returns the first hit, giving redundancy
// without coordination.
package storage
