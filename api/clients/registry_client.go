package clients

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/stretchr/testify/mock"
	"github.com/zkrlabs/proof-registry-backend/api"
	"github.com/zkrlabs/proof-registry-backend/interfaces"
)

// RegistryProvider defines the client-side view of the registry API.
type RegistryProvider interface {
	SubmitProof(req *api.SubmitProofRequest) (*api.SubmitProofResponse, error)
	VerifyProof(proofID interfaces.ProofID) (*api.VerifyProofResponse, error)
	GetProof(proofID interfaces.ProofID) (*api.ProofResponse, error)
	AccountProofs(account interfaces.Address) (*api.AccountProofsResponse, error)
	RegisterVerifier(req *api.RegisterVerifierRequest) (*api.VerifierResponse, error)
	ToggleVerifier(verifier interfaces.Address) (*api.ToggleVerifierResponse, error)
	Stats() (*api.StatsResponse, error)
	Events(after uint64) (*api.EventsResponse, error)
}

// RegistryClient implements RegistryProvider over HTTP. Caller is the
// address the requests act as; it is sent in the caller identity header on
// every request.
type RegistryClient struct {
	// ServerAddr is the base URL of the registry server
	ServerAddr string

	// Caller is the acting address, sent as the X-Registry-Caller header
	Caller interfaces.Address
}

// SubmitProof submits proof components and returns the assigned proof ID.
func (c *RegistryClient) SubmitProof(req *api.SubmitProofRequest) (*api.SubmitProofResponse, error) {
	var resp api.SubmitProofResponse
	err := c.do(http.MethodPost, "/api/proofs", req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyProof runs verification for a pending proof as the client's caller.
func (c *RegistryClient) VerifyProof(proofID interfaces.ProofID) (*api.VerifyProofResponse, error) {
	var resp api.VerifyProofResponse
	err := c.do(http.MethodPost, fmt.Sprintf("/api/proofs/%s/verify", proofID.String()), nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProof fetches a proof record by ID.
func (c *RegistryClient) GetProof(proofID interfaces.ProofID) (*api.ProofResponse, error) {
	var resp api.ProofResponse
	err := c.do(http.MethodGet, fmt.Sprintf("/api/proofs/%s", proofID.String()), nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// AccountProofs lists the proof IDs submitted by an account.
func (c *RegistryClient) AccountProofs(account interfaces.Address) (*api.AccountProofsResponse, error) {
	var resp api.AccountProofsResponse
	err := c.do(http.MethodGet, fmt.Sprintf("/api/accounts/%s/proofs", account.String()), nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterVerifier registers a new verifier. The client's caller must be
// the registry owner.
func (c *RegistryClient) RegisterVerifier(req *api.RegisterVerifierRequest) (*api.VerifierResponse, error) {
	var resp api.VerifierResponse
	err := c.do(http.MethodPost, "/api/verifiers", req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ToggleVerifier flips a verifier's active flag and returns the new state.
// The client's caller must be the registry owner.
func (c *RegistryClient) ToggleVerifier(verifier interfaces.Address) (*api.ToggleVerifierResponse, error) {
	var resp api.ToggleVerifierResponse
	err := c.do(http.MethodPost, fmt.Sprintf("/api/verifiers/%s/toggle", verifier.String()), nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stats fetches registry-wide counters and the owner address.
func (c *RegistryClient) Stats() (*api.StatsResponse, error) {
	var resp api.StatsResponse
	err := c.do(http.MethodGet, "/api/stats", nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Events fetches events with sequence numbers greater than after.
func (c *RegistryClient) Events(after uint64) (*api.EventsResponse, error) {
	var resp api.EventsResponse
	err := c.do(http.MethodGet, fmt.Sprintf("/api/events?after=%d", after), nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *RegistryClient) do(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.ServerAddr+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !c.Caller.IsZero() {
		req.Header.Set(api.CallerHeader, c.Caller.String())
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not request registry endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("registry endpoint returned non-2xx response: %d", resp.StatusCode)
		}
		return fmt.Errorf("registry endpoint returned error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not parse registry response: %w", err)
	}
	return nil
}

// MockRegistryProvider implements a mock RegistryProvider for testing.
// The behavior is determined by how the mock is configured in tests.
type MockRegistryProvider struct {
	mock.Mock
}

func (m *MockRegistryProvider) SubmitProof(req *api.SubmitProofRequest) (*api.SubmitProofResponse, error) {
	args := m.Called(req)
	return args.Get(0).(*api.SubmitProofResponse), args.Error(1)
}

func (m *MockRegistryProvider) VerifyProof(proofID interfaces.ProofID) (*api.VerifyProofResponse, error) {
	args := m.Called(proofID)
	return args.Get(0).(*api.VerifyProofResponse), args.Error(1)
}

func (m *MockRegistryProvider) GetProof(proofID interfaces.ProofID) (*api.ProofResponse, error) {
	args := m.Called(proofID)
	return args.Get(0).(*api.ProofResponse), args.Error(1)
}

func (m *MockRegistryProvider) AccountProofs(account interfaces.Address) (*api.AccountProofsResponse, error) {
	args := m.Called(account)
	return args.Get(0).(*api.AccountProofsResponse), args.Error(1)
}

func (m *MockRegistryProvider) RegisterVerifier(req *api.RegisterVerifierRequest) (*api.VerifierResponse, error) {
	args := m.Called(req)
	return args.Get(0).(*api.VerifierResponse), args.Error(1)
}

func (m *MockRegistryProvider) ToggleVerifier(verifier interfaces.Address) (*api.ToggleVerifierResponse, error) {
	args := m.Called(verifier)
	return args.Get(0).(*api.ToggleVerifierResponse), args.Error(1)
}

func (m *MockRegistryProvider) Stats() (*api.StatsResponse, error) {
	args := m.Called()
	return args.Get(0).(*api.StatsResponse), args.Error(1)
}

func (m *MockRegistryProvider) Events(after uint64) (*api.EventsResponse, error) {
	args := m.Called(after)
	return args.Get(0).(*api.EventsResponse), args.Error(1)
}
