package interfaces

import "errors"

// Registry error taxonomy. Every error aborts the operation before any
// partial write and suppresses event emission.
var (
	// ErrNotOwner is returned when a caller other than the designated owner
	// invokes an owner-only operation.
	ErrNotOwner = errors.New("caller is not the registry owner")

	// ErrNotVerifier is returned when verification is attempted by an
	// identity that is not a registered, active verifier. Authorization
	// fails closed: the predicate is never evaluated.
	ErrNotVerifier = errors.New("caller is not an active verifier")

	// ErrProofNotFound is returned when the referenced proof does not exist.
	ErrProofNotFound = errors.New("proof not found")

	// ErrVerifierNotFound is returned when the referenced verifier identity
	// was never registered.
	ErrVerifierNotFound = errors.New("verifier not registered")

	// ErrVerifierExists is returned on duplicate verifier registration.
	ErrVerifierExists = errors.New("verifier already registered")

	// ErrProofVerified is returned when verifying an already-verified
	// proof. Verification is write-once, not a silent no-op.
	ErrProofVerified = errors.New("proof already verified")

	// ErrProofAttempted is returned when verifying a proof whose single
	// verification attempt already failed.
	ErrProofAttempted = errors.New("proof verification already attempted")

	// ErrInvalidAddress is returned for a zero account identity.
	ErrInvalidAddress = errors.New("invalid zero address")

	// ErrEmptyName is returned for an empty verifier display name.
	ErrEmptyName = errors.New("verifier name must not be empty")

	// ErrMalformedProof is returned when submitted components do not match
	// the expected shape.
	ErrMalformedProof = errors.New("malformed proof components")

	// ErrIDCollision is returned when a derived identifier collides with an
	// existing record. This must never happen under correct derivation; the
	// write is refused rather than overwriting the existing record.
	ErrIDCollision = errors.New("proof identifier collision")
)
