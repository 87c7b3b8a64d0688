package registry

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zkrlabs/proof-registry-backend/eventlog"
	"github.com/zkrlabs/proof-registry-backend/interfaces"
	"github.com/zkrlabs/proof-registry-backend/predicate"
)

var (
	testOwner    = mustAddress("0000000000000000000000000000000000000aaa")
	testVerifier = mustAddress("0000000000000000000000000000000000000bbb")
	testUser     = mustAddress("0000000000000000000000000000000000000ccc")
)

func mustAddress(hex string) interfaces.Address {
	addr, err := interfaces.NewAddressFromHex(hex)
	if err != nil {
		panic(err)
	}
	return addr
}

// validComponents has an even input sum, the parity predicate accepts it.
func validComponents() interfaces.ProofComponents {
	return interfaces.ProofComponents{
		A:      [2]uint64{1, 2},
		B:      [2][2]uint64{{3, 4}, {5, 6}},
		C:      [2]uint64{7, 8},
		Inputs: []uint64{10, 20, 30},
	}
}

// oddComponents has an odd input sum, the parity predicate rejects it.
func oddComponents() interfaces.ProofComponents {
	pc := validComponents()
	pc.Inputs = []uint64{1, 2}
	return pc
}

func newTestRegistry(t *testing.T) (*Registry, *eventlog.Memory) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	events := eventlog.NewMemory()
	reg, err := New(testOwner, &predicate.Parity{}, events, logger)
	require.NoError(t, err)
	return reg, events
}

func registerTestVerifier(t *testing.T, reg *Registry) {
	t.Helper()
	require.NoError(t, reg.RegisterVerifier(testOwner, testVerifier, "test verifier"))
}

func TestNew_Validation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	events := eventlog.NewMemory()

	_, err := New(interfaces.Address{}, &predicate.Parity{}, events, logger)
	assert.ErrorIs(t, err, interfaces.ErrInvalidAddress)

	_, err = New(testOwner, nil, events, logger)
	assert.Error(t, err)

	_, err = New(testOwner, &predicate.Parity{}, nil, logger)
	assert.Error(t, err)
}

func TestSubmitProof_StoresRecord(t *testing.T) {
	reg, _ := newTestRegistry(t)

	id, err := reg.SubmitProof(testUser, validComponents())
	require.NoError(t, err)

	record, err := reg.GetProof(id)
	require.NoError(t, err)
	assert.Equal(t, id, record.ID)
	assert.Equal(t, testUser, record.Submitter)
	assert.Equal(t, validComponents(), record.Components)
	assert.False(t, record.Verified)
	assert.False(t, record.Attempted)
	assert.NotZero(t, record.SubmittedAt)
	assert.Equal(t, uint64(1), record.Sequence)
}

func TestSubmitProof_RejectsZeroSubmitter(t *testing.T) {
	reg, _ := newTestRegistry(t)

	_, err := reg.SubmitProof(interfaces.Address{}, validComponents())
	assert.ErrorIs(t, err, interfaces.ErrInvalidAddress)
}

func TestSubmitProof_IdenticalComponentsGetDistinctIDs(t *testing.T) {
	reg, _ := newTestRegistry(t)

	first, err := reg.SubmitProof(testUser, validComponents())
	require.NoError(t, err)
	second, err := reg.SubmitProof(testUser, validComponents())
	require.NoError(t, err)

	assert.False(t, first.Equal(second))

	// Both records exist independently.
	firstRecord, err := reg.GetProof(first)
	require.NoError(t, err)
	secondRecord, err := reg.GetProof(second)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), firstRecord.Sequence)
	assert.Equal(t, uint64(2), secondRecord.Sequence)
}

func TestSubmitProof_ComponentsAreCopied(t *testing.T) {
	reg, _ := newTestRegistry(t)

	components := validComponents()
	id, err := reg.SubmitProof(testUser, components)
	require.NoError(t, err)

	// Mutating the caller's slice must not leak into the stored record.
	components.Inputs[0] = 999

	record, err := reg.GetProof(id)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), record.Components.Inputs[0])
}

func TestGetProof_NotFound(t *testing.T) {
	reg, _ := newTestRegistry(t)

	_, err := reg.GetProof(interfaces.ProofID{1, 2, 3})
	assert.ErrorIs(t, err, interfaces.ErrProofNotFound)
}

func TestUserProofs_SubmissionOrder(t *testing.T) {
	reg, _ := newTestRegistry(t)

	first, err := reg.SubmitProof(testUser, validComponents())
	require.NoError(t, err)
	second, err := reg.SubmitProof(testUser, oddComponents())
	require.NoError(t, err)

	// Another account's submission must not show up in testUser's history.
	_, err = reg.SubmitProof(testVerifier, validComponents())
	require.NoError(t, err)

	assert.Equal(t, []interfaces.ProofID{first, second}, reg.UserProofs(testUser))
	assert.Empty(t, reg.UserProofs(mustAddress("0000000000000000000000000000000000000ddd")))
}

func TestVerifyProof_Success(t *testing.T) {
	reg, _ := newTestRegistry(t)
	registerTestVerifier(t, reg)

	id, err := reg.SubmitProof(testUser, validComponents())
	require.NoError(t, err)

	result, err := reg.VerifyProof(testVerifier, id)
	require.NoError(t, err)
	assert.True(t, result)

	record, err := reg.GetProof(id)
	require.NoError(t, err)
	assert.True(t, record.Verified)
	assert.True(t, record.Attempted)

	verifier, err := reg.GetVerifier(testVerifier)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), verifier.VerificationCount)
}

func TestVerifyProof_VerifiedIsFinal(t *testing.T) {
	reg, _ := newTestRegistry(t)
	registerTestVerifier(t, reg)

	id, err := reg.SubmitProof(testUser, validComponents())
	require.NoError(t, err)

	_, err = reg.VerifyProof(testVerifier, id)
	require.NoError(t, err)

	_, err = reg.VerifyProof(testVerifier, id)
	assert.ErrorIs(t, err, interfaces.ErrProofVerified)
}

func TestVerifyProof_FailedAttemptIsFinal(t *testing.T) {
	reg, _ := newTestRegistry(t)
	registerTestVerifier(t, reg)

	id, err := reg.SubmitProof(testUser, oddComponents())
	require.NoError(t, err)

	result, err := reg.VerifyProof(testVerifier, id)
	require.NoError(t, err)
	assert.False(t, result)

	record, err := reg.GetProof(id)
	require.NoError(t, err)
	assert.False(t, record.Verified)
	assert.True(t, record.Attempted)

	// A rejected proof cannot be retried.
	_, err = reg.VerifyProof(testVerifier, id)
	assert.ErrorIs(t, err, interfaces.ErrProofAttempted)

	// Failed attempts do not count towards the verifier's tally.
	verifier, err := reg.GetVerifier(testVerifier)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), verifier.VerificationCount)
}

func TestVerifyProof_EmptyInputs(t *testing.T) {
	reg, _ := newTestRegistry(t)
	registerTestVerifier(t, reg)

	// Submission does not judge inputs, the predicate does.
	pc := validComponents()
	pc.Inputs = nil
	id, err := reg.SubmitProof(testUser, pc)
	require.NoError(t, err)

	result, err := reg.VerifyProof(testVerifier, id)
	require.NoError(t, err)
	assert.False(t, result)

	record, err := reg.GetProof(id)
	require.NoError(t, err)
	assert.False(t, record.Verified)
	assert.True(t, record.Attempted)

	_, err = reg.VerifyProof(testVerifier, id)
	assert.ErrorIs(t, err, interfaces.ErrProofAttempted)
}

func TestVerifyProof_UnauthorizedNeverRunsPredicate(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	events := eventlog.NewMemory()

	mockPredicate := new(MockPredicate)
	reg, err := New(testOwner, mockPredicate, events, logger)
	require.NoError(t, err)

	id, err := reg.SubmitProof(testUser, validComponents())
	require.NoError(t, err)

	// Unregistered caller.
	_, err = reg.VerifyProof(testVerifier, id)
	assert.ErrorIs(t, err, interfaces.ErrNotVerifier)

	// Registered but deactivated caller.
	require.NoError(t, reg.RegisterVerifier(testOwner, testVerifier, "test verifier"))
	require.NoError(t, reg.SetVerifierStatus(testOwner, testVerifier, false))

	_, err = reg.VerifyProof(testVerifier, id)
	assert.ErrorIs(t, err, interfaces.ErrNotVerifier)

	mockPredicate.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	// The record is untouched by rejected calls.
	record, err := reg.GetProof(id)
	require.NoError(t, err)
	assert.False(t, record.Attempted)
}

func TestVerifyProof_NotFound(t *testing.T) {
	reg, _ := newTestRegistry(t)
	registerTestVerifier(t, reg)

	_, err := reg.VerifyProof(testVerifier, interfaces.ProofID{1})
	assert.ErrorIs(t, err, interfaces.ErrProofNotFound)
}

func TestRegisterVerifier(t *testing.T) {
	reg, _ := newTestRegistry(t)

	require.NoError(t, reg.RegisterVerifier(testOwner, testVerifier, "test verifier"))

	verifier, err := reg.GetVerifier(testVerifier)
	require.NoError(t, err)
	assert.Equal(t, testVerifier, verifier.Address)
	assert.Equal(t, "test verifier", verifier.Name)
	assert.True(t, verifier.Active)
	assert.True(t, reg.IsAuthorizedVerifier(testVerifier))
}

func TestRegisterVerifier_Validation(t *testing.T) {
	reg, _ := newTestRegistry(t)

	assert.ErrorIs(t, reg.RegisterVerifier(testUser, testVerifier, "x"), interfaces.ErrNotOwner)
	assert.ErrorIs(t, reg.RegisterVerifier(testOwner, interfaces.Address{}, "x"), interfaces.ErrInvalidAddress)
	assert.ErrorIs(t, reg.RegisterVerifier(testOwner, testVerifier, ""), interfaces.ErrEmptyName)

	require.NoError(t, reg.RegisterVerifier(testOwner, testVerifier, "x"))
	assert.ErrorIs(t, reg.RegisterVerifier(testOwner, testVerifier, "y"), interfaces.ErrVerifierExists)
}

func TestToggleVerifierStatus(t *testing.T) {
	reg, _ := newTestRegistry(t)
	registerTestVerifier(t, reg)

	active, err := reg.ToggleVerifierStatus(testOwner, testVerifier)
	require.NoError(t, err)
	assert.False(t, active)
	assert.False(t, reg.IsAuthorizedVerifier(testVerifier))

	active, err = reg.ToggleVerifierStatus(testOwner, testVerifier)
	require.NoError(t, err)
	assert.True(t, active)
	assert.True(t, reg.IsAuthorizedVerifier(testVerifier))

	_, err = reg.ToggleVerifierStatus(testUser, testVerifier)
	assert.ErrorIs(t, err, interfaces.ErrNotOwner)

	_, err = reg.ToggleVerifierStatus(testOwner, testUser)
	assert.ErrorIs(t, err, interfaces.ErrVerifierNotFound)
}

func TestStats(t *testing.T) {
	reg, _ := newTestRegistry(t)
	registerTestVerifier(t, reg)

	_, err := reg.SubmitProof(testUser, validComponents())
	require.NoError(t, err)
	_, err = reg.SubmitProof(testUser, validComponents())
	require.NoError(t, err)

	totalProofs, totalVerifiers, owner := reg.Stats()
	assert.Equal(t, uint64(2), totalProofs)
	assert.Equal(t, uint64(1), totalVerifiers)
	assert.Equal(t, testOwner, owner)
}

func TestEvents_CommitOrder(t *testing.T) {
	reg, events := newTestRegistry(t)
	registerTestVerifier(t, reg)

	id, err := reg.SubmitProof(testUser, validComponents())
	require.NoError(t, err)
	_, err = reg.VerifyProof(testVerifier, id)
	require.NoError(t, err)
	_, err = reg.ToggleVerifierStatus(testOwner, testVerifier)
	require.NoError(t, err)

	log := events.Since(0, 100)
	require.Len(t, log, 4)

	assert.Equal(t, interfaces.EventVerifierRegistered, log[0].Kind)
	assert.Equal(t, interfaces.EventProofSubmitted, log[1].Kind)
	assert.Equal(t, interfaces.EventProofVerified, log[2].Kind)
	assert.Equal(t, interfaces.EventVerifierStatusChanged, log[3].Kind)

	for i, ev := range log {
		assert.Equal(t, uint64(i+1), ev.Sequence)
	}

	assert.Equal(t, id, log[1].ProofID)
	assert.Equal(t, testUser, log[1].Account)
	assert.True(t, log[2].Result)
	assert.False(t, log[3].Active)
}

func TestConcurrentSubmissions(t *testing.T) {
	reg, _ := newTestRegistry(t)

	const goroutines = 16
	const perGoroutine = 25

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				_, err := reg.SubmitProof(testUser, validComponents())
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	totalProofs, _, _ := reg.Stats()
	assert.Equal(t, uint64(goroutines*perGoroutine), totalProofs)
	assert.Len(t, reg.UserProofs(testUser), goroutines*perGoroutine)
}
