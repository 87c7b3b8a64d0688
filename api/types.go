package api

import (
	"fmt"

	"github.com/zkrlabs/proof-registry-backend/interfaces"
)

// CallerHeader carries the hex-encoded address the request acts as. The
// server resolves authorization (owner, verifier, submitter) against it.
const CallerHeader = "X-Registry-Caller"

// SubmitProofRequest is the body of POST /api/proofs. The component slices
// mirror the Groth16 proof layout: a and c are two elements each, b is a
// two-by-two matrix, inputs is the list of public inputs and may be empty.
type SubmitProofRequest struct {
	A      []uint64   `json:"a"`
	B      [][]uint64 `json:"b"`
	C      []uint64   `json:"c"`
	Inputs []uint64   `json:"inputs"`
}

// Components validates the request shape and converts it into registry
// proof components. Returns ErrMalformedProof for any dimension mismatch.
func (r *SubmitProofRequest) Components() (interfaces.ProofComponents, error) {
	var pc interfaces.ProofComponents

	if len(r.A) != 2 || len(r.C) != 2 {
		return pc, fmt.Errorf("%w: a and c must have exactly 2 elements", interfaces.ErrMalformedProof)
	}
	if len(r.B) != 2 || len(r.B[0]) != 2 || len(r.B[1]) != 2 {
		return pc, fmt.Errorf("%w: b must be a 2x2 matrix", interfaces.ErrMalformedProof)
	}
	copy(pc.A[:], r.A)
	copy(pc.C[:], r.C)
	copy(pc.B[0][:], r.B[0])
	copy(pc.B[1][:], r.B[1])
	pc.Inputs = append([]uint64(nil), r.Inputs...)
	return pc, nil
}

// SubmitProofResponse is returned by POST /api/proofs.
type SubmitProofResponse struct {
	// ID is the hex-encoded proof identifier.
	ID interfaces.ProofID `json:"id"`
}

// VerifyProofResponse is returned by POST /api/proofs/{proof_id}/verify.
type VerifyProofResponse struct {
	ID interfaces.ProofID `json:"id"`

	// Result reports whether the predicate accepted the proof.
	Result bool `json:"result"`
}

// ProofResponse is the wire form of a proof record.
type ProofResponse struct {
	ID          interfaces.ProofID         `json:"id"`
	Submitter   interfaces.Address         `json:"submitter"`
	Components  interfaces.ProofComponents `json:"components"`
	Verified    bool                       `json:"verified"`
	Attempted   bool                       `json:"attempted"`
	SubmittedAt int64                      `json:"submitted_at"`
	Sequence    uint64                     `json:"sequence"`
}

// ProofResponseFrom converts a registry record into its wire form.
func ProofResponseFrom(rec interfaces.ProofRecord) ProofResponse {
	return ProofResponse{
		ID:          rec.ID,
		Submitter:   rec.Submitter,
		Components:  rec.Components,
		Verified:    rec.Verified,
		Attempted:   rec.Attempted,
		SubmittedAt: rec.SubmittedAt,
		Sequence:    rec.Sequence,
	}
}

// AccountProofsResponse is returned by GET /api/accounts/{address}/proofs.
type AccountProofsResponse struct {
	Account interfaces.Address   `json:"account"`
	Proofs  []interfaces.ProofID `json:"proofs"`
}

// RegisterVerifierRequest is the body of POST /api/verifiers.
type RegisterVerifierRequest struct {
	Address interfaces.Address `json:"address"`
	Name    string             `json:"name"`
}

// VerifierResponse is the wire form of a verifier record.
type VerifierResponse struct {
	Address           interfaces.Address `json:"address"`
	Name              string             `json:"name"`
	Active            bool               `json:"active"`
	VerificationCount uint64             `json:"verification_count"`
}

// ToggleVerifierResponse is returned by POST /api/verifiers/{address}/toggle.
type ToggleVerifierResponse struct {
	Address interfaces.Address `json:"address"`

	// Active is the status after the toggle.
	Active bool `json:"active"`
}

// StatsResponse is returned by GET /api/stats.
type StatsResponse struct {
	TotalProofs    uint64             `json:"total_proofs"`
	TotalVerifiers uint64             `json:"total_verifiers"`
	Owner          interfaces.Address `json:"owner"`
}

// EventsResponse is returned by GET /api/events.
type EventsResponse struct {
	Events []interfaces.Event `json:"events"`
}
