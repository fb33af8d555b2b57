// Package pledge fetches charity organization data from the Pledge API.
package pledge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/buy4good/backend/internal/provider"
)

const defaultBaseURL = "https://api.pledge.to/v1/organizations"

// Provider fetches charity data from the Pledge organizations API.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider. An empty baseURL selects the public
// Pledge API.
func NewProvider(baseURL, apiKey string, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "pledge"),
	}
}

// FetchCharity fetches the organization with the given directory id.
// Returns nil, nil if the organization is not found (HTTP 404).
func (p *Provider) FetchCharity(ctx context.Context, charityID string) (*provider.CharityResult, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(charityID)

	p.log.DebugContext(ctx, "pledge request", slog.String("charity_id", charityID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("pledge: create request: %w", err)
	}
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.doWithRetry(ctx, req, charityID)
	if err != nil {
		p.log.ErrorContext(ctx, "pledge request failed", slog.String("charity_id", charityID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("pledge: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pledge: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pledge: read body: %w", err)
	}

	var org apiOrganization
	if err := json.Unmarshal(body, &org); err != nil {
		return nil, fmt.Errorf("pledge: decode json: %w", err)
	}

	result := mapOrganization(charityID, org)

	p.log.DebugContext(ctx, "pledge response",
		slog.String("charity_id", charityID),
		slog.Int("status", resp.StatusCode),
		slog.String("name", result.Name),
	)

	return result, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, charityID string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "pledge retry", slog.String("charity_id", charityID), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	resp, err = p.httpClient.Do(req)
	return resp, err
}

// mapOrganization converts the API organization into a provider.CharityResult.
// Empty optional fields map to nil pointers.
func mapOrganization(charityID string, org apiOrganization) *provider.CharityResult {
	result := &provider.CharityResult{
		ID:   org.ID,
		Name: org.Name,
	}
	if result.ID == "" {
		result.ID = charityID
	}

	if org.MissionStatement != "" {
		m := org.MissionStatement
		result.Mission = &m
	}
	if org.LogoURL != "" {
		l := org.LogoURL
		result.LogoURL = &l
	}
	if org.WebsiteURL != "" {
		w := org.WebsiteURL
		result.Website = &w
	}
	if category := inferCategory(org.NTEECode); category != nil {
		result.Category = category
	}

	return result
}

// inferCategory maps the leading letter of an NTEE code to a broad category.
func inferCategory(nteeCode string) *string {
	if nteeCode == "" {
		return nil
	}

	var category string
	switch nteeCode[0] {
	case 'A':
		category = "Arts & Culture"
	case 'B':
		category = "Education"
	case 'C', 'D':
		category = "Environment & Animals"
	case 'E', 'F', 'G', 'H':
		category = "Health"
	case 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P':
		category = "Human Services"
	case 'Q':
		category = "International"
	default:
		category = "Community"
	}

	return &category
}
