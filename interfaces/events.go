package interfaces

// EventKind discriminates registry event payloads.
type EventKind string

const (
	// EventProofSubmitted is appended when a proof record is created.
	EventProofSubmitted EventKind = "ProofSubmitted"

	// EventProofVerified is appended after a verification attempt,
	// successful or not.
	EventProofVerified EventKind = "ProofVerified"

	// EventVerifierRegistered is appended when the owner registers a
	// verifier.
	EventVerifierRegistered EventKind = "VerifierRegistered"

	// EventVerifierStatusChanged is appended when the owner toggles or sets
	// a verifier's active flag.
	EventVerifierStatusChanged EventKind = "VerifierStatusChanged"
)

// Event is a single entry in the registry's append-only log. Sequence
// numbers are assigned by the log in commit order, starting at 1. Exactly
// one event is appended per committed mutation; failed operations append
// nothing.
type Event struct {
	Sequence uint64    `json:"sequence"`
	Kind     EventKind `json:"kind"`

	// ProofID is set for proof events.
	ProofID ProofID `json:"proof_id,omitempty"`

	// Account is the submitter for ProofSubmitted, the verifier for
	// ProofVerified, and the verifier address for verifier events.
	Account Address `json:"account"`

	// Name is set for VerifierRegistered.
	Name string `json:"name,omitempty"`

	// Result is the predicate outcome for ProofVerified.
	Result bool `json:"result"`

	// Active is the new status for VerifierStatusChanged.
	Active bool `json:"active"`

	// Timestamp is the unix time the event was committed.
	Timestamp int64 `json:"timestamp"`
}

// EventLog is an ordered, append-only event stream. Append is called by the
// registry while it holds its state lock, so sequence numbers match commit
// order exactly.
type EventLog interface {
	// Append adds the event and returns its assigned sequence number.
	Append(event Event) uint64

	// Since returns up to limit events with sequence numbers strictly
	// greater than after, in order. A non-positive limit means no limit.
	Since(after uint64, limit int) []Event

	// Len returns the sequence number of the newest event, or 0.
	Len() uint64
}
