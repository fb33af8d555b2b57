package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/buy4good/backend/internal/domain"
	"github.com/buy4good/backend/internal/metrics"
	"github.com/buy4good/backend/internal/service/donation"
)

// donationService defines the minimal interface needed by DonationHandler.
type donationService interface {
	Distribute(ctx context.Context, input donation.DistributeInput) (*domain.DistributionResult, error)
	GetStats(ctx context.Context) (domain.DonationStats, error)
	GetRecent(ctx context.Context, limit int) ([]domain.TransactionGroup, error)
	GetTotal(ctx context.Context) (decimal.Decimal, error)
}

// DonationHandler serves distribution and ledger view endpoints.
type DonationHandler struct {
	svc donationService
	reg *metrics.Registry
	log *slog.Logger
}

// NewDonationHandler creates a DonationHandler. reg may be nil.
func NewDonationHandler(svc donationService, reg *metrics.Registry, logger *slog.Logger) *DonationHandler {
	return &DonationHandler{svc: svc, reg: reg, log: logger.With("handler", "donations")}
}

type distributeRequest struct {
	TransactionID          string          `json:"transaction_id"`
	MerchantName           string          `json:"merchant_name"`
	ProductName            string          `json:"product_name"`
	Amount                 decimal.Decimal `json:"amount"`
	CashbackRate           float64         `json:"cashback_rate"`
	AutoDonationPercentage float64         `json:"auto_donation_percentage"`
}

type charityAmountResponse struct {
	CharityID string          `json:"charity_id"`
	Amount    decimal.Decimal `json:"amount"`
}

type distributeResponse struct {
	TransactionID       string                  `json:"transaction_id"`
	PurchaseAmount      decimal.Decimal         `json:"purchase_amount"`
	CashbackRate        float64                 `json:"cashback_rate"`
	CashbackAmount      decimal.Decimal         `json:"cashback_amount"`
	TotalDonationAmount decimal.Decimal         `json:"total_donation_amount"`
	PerCharityAmounts   []charityAmountResponse `json:"per_charity_amounts"`
	FailedCharityIDs    []string                `json:"failed_charity_ids"`
}

type statsResponse struct {
	CausesSupported int `json:"causes_supported"`
	TotalPurchases  int `json:"total_purchases"`
	TimesDonated    int `json:"times_donated"`
}

type totalResponse struct {
	Total decimal.Decimal `json:"total"`
}

type donationRecordResponse struct {
	ID             string          `json:"id"`
	CharityID      string          `json:"charity_id"`
	DonationAmount decimal.Decimal `json:"donation_amount"`
	DonationDate   time.Time       `json:"donation_date"`
}

type transactionGroupResponse struct {
	TransactionID string                   `json:"transaction_id"`
	MerchantName  string                   `json:"merchant_name"`
	ProductName   string                   `json:"product_name"`
	Date          time.Time                `json:"date"`
	TotalAmount   decimal.Decimal          `json:"total_amount"`
	Donations     []donationRecordResponse `json:"donations"`
}

// Distribute handles POST /api/v1/donations/distribute.
// Partial ledger failure is still 200; failed_charity_ids tells the
// client which charities to replay for.
func (h *DonationHandler) Distribute(w http.ResponseWriter, r *http.Request) {
	var req distributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Distribute(r.Context(), donation.DistributeInput{
		TransactionID:          req.TransactionID,
		MerchantName:           req.MerchantName,
		ProductName:            req.ProductName,
		GrossAmount:            req.Amount,
		CashbackRate:           req.CashbackRate,
		AutoDonationPercentage: req.AutoDonationPercentage,
	})
	if err != nil {
		if h.reg != nil {
			h.reg.DistributionErrors.Inc()
		}
		handleError(r.Context(), h.log, w, err)
		return
	}

	h.observe(result)
	writeJSON(w, http.StatusOK, toDistributeResponse(result))
}

// Stats handles GET /api/v1/donations/stats.
func (h *DonationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		CausesSupported: stats.CausesSupported,
		TotalPurchases:  stats.TotalPurchases,
		TimesDonated:    stats.TimesDonated,
	})
}

// Recent handles GET /api/v1/donations/recent?limit=N.
func (h *DonationHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	groups, err := h.svc.GetRecent(r.Context(), limit)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]transactionGroupResponse, len(groups))
	for i, g := range groups {
		out[i] = toTransactionGroupResponse(g)
	}

	writeJSON(w, http.StatusOK, out)
}

// Total handles GET /api/v1/donations/total.
func (h *DonationHandler) Total(w http.ResponseWriter, r *http.Request) {
	total, err := h.svc.GetTotal(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, totalResponse{Total: total})
}

// observe feeds the distribution counters from a completed result.
func (h *DonationHandler) observe(result *domain.DistributionResult) {
	if h.reg == nil {
		return
	}

	h.reg.Distributions.Inc()
	h.reg.DonatedCents.Add(result.TotalDonationAmount.Mul(decimal.NewFromInt(100)).InexactFloat64())

	recorded := 0
	for _, ca := range result.PerCharityAmounts {
		if ca.Amount.IsPositive() {
			recorded++
		}
	}
	h.reg.DonationRecords.Add(float64(recorded - len(result.FailedCharityIDs)))
}

func toDistributeResponse(result *domain.DistributionResult) distributeResponse {
	amounts := make([]charityAmountResponse, len(result.PerCharityAmounts))
	for i, ca := range result.PerCharityAmounts {
		amounts[i] = charityAmountResponse{CharityID: ca.CharityID, Amount: ca.Amount}
	}

	return distributeResponse{
		TransactionID:       result.TransactionID,
		PurchaseAmount:      result.PurchaseAmount,
		CashbackRate:        result.CashbackRate,
		CashbackAmount:      result.CashbackAmount,
		TotalDonationAmount: result.TotalDonationAmount,
		PerCharityAmounts:   amounts,
		FailedCharityIDs:    result.FailedCharityIDs,
	}
}

func toTransactionGroupResponse(g domain.TransactionGroup) transactionGroupResponse {
	donations := make([]donationRecordResponse, len(g.Donations))
	for i, rec := range g.Donations {
		donations[i] = donationRecordResponse{
			ID:             rec.ID.String(),
			CharityID:      rec.CharityID,
			DonationAmount: rec.DonationAmount,
			DonationDate:   rec.DonationDate,
		}
	}

	return transactionGroupResponse{
		TransactionID: g.TransactionID,
		MerchantName:  g.MerchantName,
		ProductName:   g.ProductName,
		Date:          g.Date,
		TotalAmount:   g.TotalAmount,
		Donations:     donations,
	}
}
