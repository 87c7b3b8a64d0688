package interfaces

// VerificationPredicate decides proof validity given proof components. It
// must be pure and deterministic: no side effects, no access to registry
// state. The registry treats it as an injected capability so a real
// Groth16/PLONK pairing check can replace the placeholder without touching
// registry logic.
type VerificationPredicate interface {
	Verify(a [2]uint64, b [2][2]uint64, c [2]uint64, inputs []uint64) bool
}

// ProofRegistry is the boundary exposed to external callers. The caller
// identity is an explicit parameter on every mutating operation; there is
// no ambient identity.
type ProofRegistry interface {
	// SubmitProof stores a new proof record for caller and returns its
	// content-derived identifier.
	SubmitProof(caller Address, components ProofComponents) (ProofID, error)

	// VerifyProof evaluates the predicate against the record's components.
	// The caller must be a registered, active verifier. Verification is
	// single-shot per record.
	VerifyProof(caller Address, id ProofID) (bool, error)

	// GetProof returns a copy of the record, or ErrProofNotFound.
	GetProof(id ProofID) (ProofRecord, error)

	// UserProofs returns the submitter's full submission history in order.
	UserProofs(submitter Address) []ProofID

	// RegisterVerifier creates an active verifier record. Owner only.
	RegisterVerifier(caller, verifier Address, name string) error

	// SetVerifierStatus sets the verifier's active flag. Owner only.
	SetVerifierStatus(caller, verifier Address, active bool) error

	// ToggleVerifierStatus flips the verifier's active flag and returns the
	// new value. Owner only.
	ToggleVerifierStatus(caller, verifier Address) (bool, error)

	// GetVerifier returns a copy of the verifier record, or
	// ErrVerifierNotFound.
	GetVerifier(addr Address) (Verifier, error)

	// IsAuthorizedVerifier reports whether addr is registered and active.
	IsAuthorizedVerifier(addr Address) bool

	// Stats returns the global counters and the owner identity.
	Stats() (totalProofs, totalVerifiers uint64, owner Address)
}
