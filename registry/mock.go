package registry

import (
	"github.com/stretchr/testify/mock"

	"github.com/zkrlabs/proof-registry-backend/interfaces"
)

// MockPredicate mocks the VerificationPredicate interface.
type MockPredicate struct {
	mock.Mock
}

// Verify mocks the Verify method.
func (m *MockPredicate) Verify(a [2]uint64, b [2][2]uint64, c [2]uint64, inputs []uint64) bool {
	args := m.Called(a, b, c, inputs)
	return args.Bool(0)
}

// MockProofRegistry mocks the ProofRegistry interface.
type MockProofRegistry struct {
	mock.Mock
}

// SubmitProof mocks the SubmitProof method.
func (m *MockProofRegistry) SubmitProof(caller interfaces.Address, components interfaces.ProofComponents) (interfaces.ProofID, error) {
	args := m.Called(caller, components)
	return args.Get(0).(interfaces.ProofID), args.Error(1)
}

// VerifyProof mocks the VerifyProof method.
func (m *MockProofRegistry) VerifyProof(caller interfaces.Address, id interfaces.ProofID) (bool, error) {
	args := m.Called(caller, id)
	return args.Bool(0), args.Error(1)
}

// GetProof mocks the GetProof method.
func (m *MockProofRegistry) GetProof(id interfaces.ProofID) (interfaces.ProofRecord, error) {
	args := m.Called(id)
	return args.Get(0).(interfaces.ProofRecord), args.Error(1)
}

// UserProofs mocks the UserProofs method.
func (m *MockProofRegistry) UserProofs(submitter interfaces.Address) []interfaces.ProofID {
	args := m.Called(submitter)
	return args.Get(0).([]interfaces.ProofID)
}

// RegisterVerifier mocks the RegisterVerifier method.
func (m *MockProofRegistry) RegisterVerifier(caller, verifier interfaces.Address, name string) error {
	args := m.Called(caller, verifier, name)
	return args.Error(0)
}

// SetVerifierStatus mocks the SetVerifierStatus method.
func (m *MockProofRegistry) SetVerifierStatus(caller, verifier interfaces.Address, active bool) error {
	args := m.Called(caller, verifier, active)
	return args.Error(0)
}

// ToggleVerifierStatus mocks the ToggleVerifierStatus method.
func (m *MockProofRegistry) ToggleVerifierStatus(caller, verifier interfaces.Address) (bool, error) {
	args := m.Called(caller, verifier)
	return args.Bool(0), args.Error(1)
}

// GetVerifier mocks the GetVerifier method.
func (m *MockProofRegistry) GetVerifier(addr interfaces.Address) (interfaces.Verifier, error) {
	args := m.Called(addr)
	return args.Get(0).(interfaces.Verifier), args.Error(1)
}

// IsAuthorizedVerifier mocks the IsAuthorizedVerifier method.
func (m *MockProofRegistry) IsAuthorizedVerifier(addr interfaces.Address) bool {
	args := m.Called(addr)
	return args.Bool(0)
}

// Stats mocks the Stats method.
func (m *MockProofRegistry) Stats() (uint64, uint64, interfaces.Address) {
	args := m.Called()
	return args.Get(0).(uint64), args.Get(1).(uint64), args.Get(2).(interfaces.Address)
}
