package interfaces

// ProofRecord is a stored submission awaiting or having completed
// verification. The registry exclusively owns all records; accessors return
// copies.
type ProofRecord struct {
	ID         ProofID         `json:"id"`
	Submitter  Address         `json:"submitter"`
	Components ProofComponents `json:"components"`

	// Verified transitions false -> true at most once and never reverts.
	Verified bool `json:"verified"`

	// Attempted is set on the first verification attempt regardless of its
	// outcome. Verification is single-shot: an attempted record cannot be
	// verified again.
	Attempted bool `json:"attempted"`

	// SubmittedAt is the unix timestamp of the submission. A zero value is
	// the "no such record" sentinel.
	SubmittedAt int64 `json:"submitted_at"`

	// Sequence is the global submission sequence number used in identifier
	// derivation.
	Sequence uint64 `json:"sequence"`
}

// Exists reports whether the record is present, using the timestamp
// sentinel.
func (r ProofRecord) Exists() bool {
	return r.SubmittedAt != 0
}

// Verifier is an account authorized to evaluate proofs.
type Verifier struct {
	Address Address `json:"address"`
	Name    string  `json:"name"`

	// Active gates whether this identity may perform verifications.
	Active bool `json:"active"`

	// VerificationCount increments only on successful verifications.
	VerificationCount uint64 `json:"verification_count"`
}
