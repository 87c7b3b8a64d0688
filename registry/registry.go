package registry

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/zkrlabs/proof-registry-backend/interfaces"
)

// Registry owns all proof and verifier records. It implements
// interfaces.ProofRegistry with in-memory state guarded by a single mutex,
// so concurrent submit/verify/register/toggle calls on the same record are
// strictly serialized and every mutation commits atomically with its event.
type Registry struct {
	mu sync.Mutex

	owner     interfaces.Address
	predicate interfaces.VerificationPredicate
	events    interfaces.EventLog
	log       *slog.Logger

	proofs     map[interfaces.ProofID]*interfaces.ProofRecord
	verifiers  map[interfaces.Address]*interfaces.Verifier
	userProofs map[interfaces.Address][]interfaces.ProofID

	submitSeq      uint64
	totalProofs    uint64
	totalVerifiers uint64

	now func() int64
}

// New creates a registry with the given fixed owner, injected verification
// predicate, and event log. The owner identity is never rotated by the
// registry.
func New(owner interfaces.Address, predicate interfaces.VerificationPredicate, events interfaces.EventLog, log *slog.Logger) (*Registry, error) {
	if owner.IsZero() {
		return nil, interfaces.ErrInvalidAddress
	}
	if predicate == nil {
		return nil, errors.New("verification predicate is required")
	}
	if events == nil {
		return nil, errors.New("event log is required")
	}
	if log == nil {
		log = slog.Default()
	}

	return &Registry{
		owner:      owner,
		predicate:  predicate,
		events:     events,
		log:        log,
		proofs:     make(map[interfaces.ProofID]*interfaces.ProofRecord),
		verifiers:  make(map[interfaces.Address]*interfaces.Verifier),
		userProofs: make(map[interfaces.Address][]interfaces.ProofID),
		now:        func() int64 { return time.Now().Unix() },
	}, nil
}

// SubmitProof validates the submission, derives its identifier, and commits
// the record, the submitter index entry, the global counter, and the
// ProofSubmitted event as one atomic step.
func (r *Registry) SubmitProof(caller interfaces.Address, components interfaces.ProofComponents) (interfaces.ProofID, error) {
	if caller.IsZero() {
		return interfaces.ProofID{}, interfaces.ErrInvalidAddress
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sequence := r.submitSeq + 1
	submittedAt := r.now()
	id := DeriveProofID(caller, components, sequence, submittedAt)

	if _, exists := r.proofs[id]; exists {
		// Refusing the write is the only safe option: overwriting would
		// violate record immutability.
		r.log.Error("Derived proof identifier collides with existing record",
			slog.String("proofID", id.String()),
			slog.String("submitter", caller.String()))
		return interfaces.ProofID{}, interfaces.ErrIDCollision
	}

	r.proofs[id] = &interfaces.ProofRecord{
		ID:          id,
		Submitter:   caller,
		Components:  components.Clone(),
		SubmittedAt: submittedAt,
		Sequence:    sequence,
	}
	r.userProofs[caller] = append(r.userProofs[caller], id)
	r.submitSeq = sequence
	r.totalProofs++

	r.events.Append(interfaces.Event{
		Kind:      interfaces.EventProofSubmitted,
		ProofID:   id,
		Account:   caller,
		Timestamp: submittedAt,
	})

	r.log.Info("Proof submitted",
		slog.String("proofID", id.String()),
		slog.String("submitter", caller.String()),
		slog.Uint64("sequence", sequence))

	return id, nil
}

// VerifyProof evaluates the predicate against the record's components and
// commits the one-way state transition. The caller must be a registered,
// active verifier; authorization fails closed before the record or the
// predicate is touched. Verification is single-shot: both a verified and a
// failed-attempt record reject further calls.
func (r *Registry) VerifyProof(caller interfaces.Address, id interfaces.ProofID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	verifier, registered := r.verifiers[caller]
	if !registered || !verifier.Active {
		return false, interfaces.ErrNotVerifier
	}

	record, exists := r.proofs[id]
	if !exists {
		return false, interfaces.ErrProofNotFound
	}
	if record.Verified {
		return false, interfaces.ErrProofVerified
	}
	if record.Attempted {
		return false, interfaces.ErrProofAttempted
	}

	result := r.predicate.Verify(record.Components.A, record.Components.B, record.Components.C, record.Components.Inputs)

	record.Attempted = true
	if result {
		record.Verified = true
		verifier.VerificationCount++
	}

	r.events.Append(interfaces.Event{
		Kind:      interfaces.EventProofVerified,
		ProofID:   id,
		Account:   caller,
		Result:    result,
		Timestamp: r.now(),
	})

	r.log.Info("Proof verification attempted",
		slog.String("proofID", id.String()),
		slog.String("verifier", caller.String()),
		slog.Bool("result", result))

	return result, nil
}

// GetProof returns a copy of the record.
func (r *Registry) GetProof(id interfaces.ProofID) (interfaces.ProofRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.proofs[id]
	if !exists {
		return interfaces.ProofRecord{}, interfaces.ErrProofNotFound
	}

	copied := *record
	copied.Components = record.Components.Clone()
	return copied, nil
}

// UserProofs returns the submitter's full submission history in insertion
// order, empty if the account never submitted.
func (r *Registry) UserProofs(submitter interfaces.Address) []interfaces.ProofID {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.userProofs[submitter]
	out := make([]interfaces.ProofID, len(ids))
	copy(out, ids)
	return out
}

// RegisterVerifier creates an active verifier record. Owner only.
func (r *Registry) RegisterVerifier(caller, verifier interfaces.Address, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !caller.Equal(r.owner) {
		return interfaces.ErrNotOwner
	}
	if verifier.IsZero() {
		return interfaces.ErrInvalidAddress
	}
	if name == "" {
		return interfaces.ErrEmptyName
	}
	if _, exists := r.verifiers[verifier]; exists {
		return interfaces.ErrVerifierExists
	}

	r.verifiers[verifier] = &interfaces.Verifier{
		Address: verifier,
		Name:    name,
		Active:  true,
	}
	r.totalVerifiers++

	r.events.Append(interfaces.Event{
		Kind:      interfaces.EventVerifierRegistered,
		Account:   verifier,
		Name:      name,
		Timestamp: r.now(),
	})

	r.log.Info("Verifier registered",
		slog.String("verifier", verifier.String()),
		slog.String("name", name))

	return nil
}

// SetVerifierStatus sets the verifier's active flag. Owner only.
func (r *Registry) SetVerifierStatus(caller, verifier interfaces.Address, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.setStatus(caller, verifier, func(bool) bool { return active })
	return err
}

// ToggleVerifierStatus flips the verifier's active flag and returns the new
// value. Owner only.
func (r *Registry) ToggleVerifierStatus(caller, verifier interfaces.Address) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.setStatus(caller, verifier, func(current bool) bool { return !current })
}

// setStatus applies the status change under the caller's lock.
func (r *Registry) setStatus(caller, verifier interfaces.Address, next func(bool) bool) (bool, error) {
	if !caller.Equal(r.owner) {
		return false, interfaces.ErrNotOwner
	}

	record, exists := r.verifiers[verifier]
	if !exists {
		return false, interfaces.ErrVerifierNotFound
	}

	record.Active = next(record.Active)

	r.events.Append(interfaces.Event{
		Kind:      interfaces.EventVerifierStatusChanged,
		Account:   verifier,
		Active:    record.Active,
		Timestamp: r.now(),
	})

	r.log.Info("Verifier status changed",
		slog.String("verifier", verifier.String()),
		slog.Bool("active", record.Active))

	return record.Active, nil
}

// GetVerifier returns a copy of the verifier record.
func (r *Registry) GetVerifier(addr interfaces.Address) (interfaces.Verifier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.verifiers[addr]
	if !exists {
		return interfaces.Verifier{}, interfaces.ErrVerifierNotFound
	}
	return *record, nil
}

// IsAuthorizedVerifier reports whether addr is registered and active.
func (r *Registry) IsAuthorizedVerifier(addr interfaces.Address) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.verifiers[addr]
	return exists && record.Active
}

// Stats returns the global counters and the owner identity.
func (r *Registry) Stats() (totalProofs, totalVerifiers uint64, owner interfaces.Address) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.totalProofs, r.totalVerifiers, r.owner
}
