// Package registry implements the authoritative proof registry: proof
// record lifecycle, the verifier registry with its active/inactive status,
// owner and verifier access control, and deterministic identifier
// derivation.
//
// The registry is a single process-wide state object created by New and
// passed explicitly to all callers; there are no hidden singletons. Every
// mutating operation is serialized by one mutex and either commits fully
// (record, index, counter, and event) or leaves no trace. The verification
// algorithm itself is an injected interfaces.VerificationPredicate, so a
// real cryptographic verifier can replace the placeholder without changes
// here.
package registry
