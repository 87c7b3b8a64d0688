// Package archiver persists registry activity to content-addressed storage.
//
// The archiver runs outside the registry lock. It polls the event log with
// a cursor, snapshots the proof records referenced by new events, and writes
// both the event batches and the snapshots through a storage backend. Losing
// the archiver never affects registry correctness, the in-memory state stays
// authoritative.
package archiver
