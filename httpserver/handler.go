package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/zkrlabs/proof-registry-backend/api"
	"github.com/zkrlabs/proof-registry-backend/interfaces"
	"github.com/zkrlabs/proof-registry-backend/metrics"
)

// maxBodySize is the maximum allowed request body size (1MB).
const maxBodySize = 1024 * 1024

// maxEventBatch caps how many events one request can page through.
const maxEventBatch = 1000

// Handler processes HTTP requests for the proof registry service. It parses
// the caller identity header, delegates to the registry, and maps registry
// errors to HTTP status codes.
type Handler struct {
	registry interfaces.ProofRegistry
	events   interfaces.EventLog
	log      *slog.Logger
}

// NewHandler creates a new HTTP request handler with the specified
// dependencies.
func NewHandler(registry interfaces.ProofRegistry, events interfaces.EventLog, log *slog.Logger) *Handler {
	return &Handler{
		registry: registry,
		events:   events,
		log:      log,
	}
}

// caller parses the acting address from the caller identity header. A
// missing header yields the zero address, the registry rejects that on
// mutating operations.
func (h *Handler) caller(r *http.Request) (interfaces.Address, error) {
	raw := r.Header.Get(api.CallerHeader)
	if raw == "" {
		return interfaces.Address{}, nil
	}
	return interfaces.NewAddressFromHex(raw)
}

// statusFor maps a registry error to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, interfaces.ErrMalformedProof),
		errors.Is(err, interfaces.ErrInvalidAddress),
		errors.Is(err, interfaces.ErrEmptyName):
		return http.StatusBadRequest
	case errors.Is(err, interfaces.ErrNotVerifier):
		return http.StatusUnauthorized
	case errors.Is(err, interfaces.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, interfaces.ErrProofNotFound),
		errors.Is(err, interfaces.ErrVerifierNotFound):
		return http.StatusNotFound
	case errors.Is(err, interfaces.ErrProofVerified),
		errors.Is(err, interfaces.ErrProofAttempted),
		errors.Is(err, interfaces.ErrVerifierExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusFor(err))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("Failed to encode response", "err", err)
	}
}

// HandleSubmitProof processes proof submissions.
//
// URL format: POST /api/proofs
// Required headers:
//   - X-Registry-Caller: hex address of the submitter
//
// Request body: JSON proof components (a, b, c, inputs)
//
// Response: JSON containing the content-derived proof ID. Submitting the
// same components again yields a fresh ID, submissions are independent
// records.
func (h *Handler) HandleSubmitProof(w http.ResponseWriter, r *http.Request) {
	caller, err := h.caller(r)
	if err != nil {
		h.log.Error("Invalid caller address", "err", err)
		http.Error(w, "Invalid caller address", http.StatusBadRequest)
		return
	}

	var req api.SubmitProofRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		h.log.Error("Failed to parse submit request", "err", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	components, err := req.Components()
	if err != nil {
		h.writeError(w, err)
		return
	}

	id, err := h.registry.SubmitProof(caller, components)
	if err != nil {
		h.log.Error("Proof submission failed", "err", err, slog.String("caller", caller.String()))
		h.writeError(w, err)
		return
	}

	metrics.ProofSubmissions.Inc()
	h.writeJSON(w, http.StatusCreated, api.SubmitProofResponse{ID: id})
}

// HandleVerifyProof runs verification for a pending proof.
//
// URL format: POST /api/proofs/{proof_id}/verify
// Required headers:
//   - X-Registry-Caller: hex address of an active verifier
//
// Response: JSON containing the proof ID and the verification result. A
// rejected proof stays in the registry but cannot be verified again.
func (h *Handler) HandleVerifyProof(w http.ResponseWriter, r *http.Request) {
	caller, err := h.caller(r)
	if err != nil {
		h.log.Error("Invalid caller address", "err", err)
		http.Error(w, "Invalid caller address", http.StatusBadRequest)
		return
	}

	proofID, err := interfaces.NewProofIDFromHex(r.PathValue("proof_id"))
	if err != nil {
		http.Error(w, "Invalid proof ID format", http.StatusBadRequest)
		return
	}

	result, err := h.registry.VerifyProof(caller, proofID)
	if err != nil {
		h.log.Error("Proof verification failed", "err", err,
			slog.String("caller", caller.String()),
			slog.String("proofID", proofID.String()))
		h.writeError(w, err)
		return
	}

	outcome := "rejected"
	if result {
		outcome = "verified"
	}
	metrics.VerificationAttempts.WithLabelValues(outcome).Inc()

	h.writeJSON(w, http.StatusOK, api.VerifyProofResponse{ID: proofID, Result: result})
}

// HandleGetProof retrieves a proof record by ID.
//
// URL format: GET /api/proofs/{proof_id}
func (h *Handler) HandleGetProof(w http.ResponseWriter, r *http.Request) {
	proofID, err := interfaces.NewProofIDFromHex(r.PathValue("proof_id"))
	if err != nil {
		http.Error(w, "Invalid proof ID format", http.StatusBadRequest)
		return
	}

	record, err := h.registry.GetProof(proofID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, api.ProofResponseFrom(record))
}

// HandleAccountProofs lists the proof IDs submitted by an account, in
// submission order.
//
// URL format: GET /api/accounts/{address}/proofs
func (h *Handler) HandleAccountProofs(w http.ResponseWriter, r *http.Request) {
	account, err := interfaces.NewAddressFromHex(r.PathValue("address"))
	if err != nil {
		http.Error(w, "Invalid account address format", http.StatusBadRequest)
		return
	}

	proofs := h.registry.UserProofs(account)
	h.writeJSON(w, http.StatusOK, api.AccountProofsResponse{Account: account, Proofs: proofs})
}

// HandleRegisterVerifier registers a new verifier. Owner only.
//
// URL format: POST /api/verifiers
// Required headers:
//   - X-Registry-Caller: hex address of the registry owner
//
// Request body: JSON with the verifier address and a display name.
func (h *Handler) HandleRegisterVerifier(w http.ResponseWriter, r *http.Request) {
	caller, err := h.caller(r)
	if err != nil {
		h.log.Error("Invalid caller address", "err", err)
		http.Error(w, "Invalid caller address", http.StatusBadRequest)
		return
	}

	var req api.RegisterVerifierRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		h.log.Error("Failed to parse verifier request", "err", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.registry.RegisterVerifier(caller, req.Address, req.Name); err != nil {
		h.log.Error("Verifier registration failed", "err", err,
			slog.String("caller", caller.String()),
			slog.String("verifier", req.Address.String()))
		h.writeError(w, err)
		return
	}

	metrics.VerifierRegistrations.Inc()

	verifier, err := h.registry.GetVerifier(req.Address)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, api.VerifierResponse{
		Address:           verifier.Address,
		Name:              verifier.Name,
		Active:            verifier.Active,
		VerificationCount: verifier.VerificationCount,
	})
}

// HandleToggleVerifier flips a verifier's active flag. Owner only.
//
// URL format: POST /api/verifiers/{address}/toggle
func (h *Handler) HandleToggleVerifier(w http.ResponseWriter, r *http.Request) {
	caller, err := h.caller(r)
	if err != nil {
		h.log.Error("Invalid caller address", "err", err)
		http.Error(w, "Invalid caller address", http.StatusBadRequest)
		return
	}

	verifier, err := interfaces.NewAddressFromHex(r.PathValue("address"))
	if err != nil {
		http.Error(w, "Invalid verifier address format", http.StatusBadRequest)
		return
	}

	active, err := h.registry.ToggleVerifierStatus(caller, verifier)
	if err != nil {
		h.log.Error("Verifier toggle failed", "err", err,
			slog.String("caller", caller.String()),
			slog.String("verifier", verifier.String()))
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, api.ToggleVerifierResponse{Address: verifier, Active: active})
}

// HandleGetVerifier retrieves a verifier record by address.
//
// URL format: GET /api/verifiers/{address}
func (h *Handler) HandleGetVerifier(w http.ResponseWriter, r *http.Request) {
	address, err := interfaces.NewAddressFromHex(r.PathValue("address"))
	if err != nil {
		http.Error(w, "Invalid verifier address format", http.StatusBadRequest)
		return
	}

	verifier, err := h.registry.GetVerifier(address)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, api.VerifierResponse{
		Address:           verifier.Address,
		Name:              verifier.Name,
		Active:            verifier.Active,
		VerificationCount: verifier.VerificationCount,
	})
}

// HandleStats reports registry-wide counters and the owner address.
//
// URL format: GET /api/stats
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	totalProofs, totalVerifiers, owner := h.registry.Stats()
	h.writeJSON(w, http.StatusOK, api.StatsResponse{
		TotalProofs:    totalProofs,
		TotalVerifiers: totalVerifiers,
		Owner:          owner,
	})
}

// HandleEvents pages through the event log.
//
// URL format: GET /api/events?after=N
//
// Returns events with sequence numbers greater than after, in sequence
// order, at most maxEventBatch per request.
func (h *Handler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	var after uint64
	if raw := r.URL.Query().Get("after"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			http.Error(w, "Invalid after parameter", http.StatusBadRequest)
			return
		}
		after = parsed
	}

	events := h.events.Since(after, maxEventBatch)
	h.writeJSON(w, http.StatusOK, api.EventsResponse{Events: events})
}
