package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/buy4good/backend/internal/domain"
	"github.com/buy4good/backend/internal/provider"
)

// fallbackCharityName labels a charity whose directory lookup failed.
// Directory trouble must never surface as an error to the client: the
// donation flows keep working and the UI shows a generic label.
const fallbackCharityName = "Charity"

// charityService defines the minimal interface needed by CharityHandler.
type charityService interface {
	GetCharity(ctx context.Context, charityID string) (*provider.CharityResult, error)
}

// CharityHandler serves charity directory lookups.
type CharityHandler struct {
	svc charityService
	log *slog.Logger
}

// NewCharityHandler creates a CharityHandler.
func NewCharityHandler(svc charityService, logger *slog.Logger) *CharityHandler {
	return &CharityHandler{svc: svc, log: logger.With("handler", "charities")}
}

type charityResponse struct {
	CharityID string  `json:"charity_id"`
	Name      string  `json:"name"`
	LogoURL   *string `json:"logo_url,omitempty"`
	Mission   *string `json:"mission,omitempty"`
	Website   *string `json:"website,omitempty"`
	Category  *string `json:"category,omitempty"`
}

// Get handles GET /api/v1/charities/{charityID}. A failed or empty
// directory lookup degrades to a fallback label with status 200.
func (h *CharityHandler) Get(w http.ResponseWriter, r *http.Request) {
	charityID := r.PathValue("charityID")

	result, err := h.svc.GetCharity(r.Context(), charityID)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			handleError(r.Context(), h.log, w, err)
			return
		}

		h.log.WarnContext(r.Context(), "charity lookup degraded to fallback",
			slog.String("charity_id", charityID),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusOK, charityResponse{
			CharityID: charityID,
			Name:      fallbackCharityName,
		})
		return
	}

	writeJSON(w, http.StatusOK, charityResponse{
		CharityID: result.ID,
		Name:      result.Name,
		LogoURL:   result.LogoURL,
		Mission:   result.Mission,
		Website:   result.Website,
		Category:  result.Category,
	})
}
