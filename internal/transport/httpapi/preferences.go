package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/buy4good/backend/internal/domain"
	"github.com/buy4good/backend/internal/service/allocation"
)

// allocationService defines the minimal interface needed by PreferenceHandler.
type allocationService interface {
	AddPreference(ctx context.Context, input allocation.AddPreferenceInput) (domain.CharityPreference, error)
	RemovePreference(ctx context.Context, input allocation.RemovePreferenceInput) error
	SetAllocations(ctx context.Context, input allocation.SetAllocationsInput) error
	Rebalance(ctx context.Context) ([]domain.CharityShare, error)
	GetDistribution(ctx context.Context) ([]domain.CharityShare, error)
}

// PreferenceHandler serves charity preference and allocation endpoints.
type PreferenceHandler struct {
	svc allocationService
	log *slog.Logger
}

// NewPreferenceHandler creates a PreferenceHandler.
func NewPreferenceHandler(svc allocationService, logger *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{svc: svc, log: logger.With("handler", "preferences")}
}

type addPreferenceRequest struct {
	CharityID string `json:"charity_id"`
}

type addPreferenceResponse struct {
	PreferenceID string `json:"preference_id"`
}

type allocationEntry struct {
	CharityID  string  `json:"charity_id"`
	Percentage float64 `json:"percentage"`
}

type setAllocationsRequest struct {
	Allocations []allocationEntry `json:"allocations"`
}

// Add handles POST /api/v1/preferences.
func (h *PreferenceHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addPreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pref, err := h.svc.AddPreference(r.Context(), allocation.AddPreferenceInput{
		CharityID: req.CharityID,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, addPreferenceResponse{
		PreferenceID: pref.ID.String(),
	})
}

// Remove handles DELETE /api/v1/preferences/{charityID}.
func (h *PreferenceHandler) Remove(w http.ResponseWriter, r *http.Request) {
	err := h.svc.RemovePreference(r.Context(), allocation.RemovePreferenceInput{
		CharityID: r.PathValue("charityID"),
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetAllocations handles PUT /api/v1/preferences/allocations.
func (h *PreferenceHandler) SetAllocations(w http.ResponseWriter, r *http.Request) {
	var req setAllocationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	shares := make([]domain.CharityShare, len(req.Allocations))
	for i, a := range req.Allocations {
		shares[i] = domain.CharityShare{CharityID: a.CharityID, Percentage: a.Percentage}
	}

	if err := h.svc.SetAllocations(r.Context(), allocation.SetAllocationsInput{Shares: shares}); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Rebalance handles POST /api/v1/preferences/rebalance.
func (h *PreferenceHandler) Rebalance(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.Rebalance(r.Context()); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Distribution handles GET /api/v1/distribution.
func (h *PreferenceHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	shares, err := h.svc.GetDistribution(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	entries := make([]allocationEntry, len(shares))
	for i, s := range shares {
		entries[i] = allocationEntry{CharityID: s.CharityID, Percentage: s.Percentage}
	}

	writeJSON(w, http.StatusOK, entries)
}
