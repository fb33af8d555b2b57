package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/buy4good/backend/internal/config"
	"github.com/buy4good/backend/internal/metrics"
	"github.com/buy4good/backend/internal/transport/middleware"
)

// tokenValidator verifies bearer tokens; *auth.JWTManager satisfies it.
type tokenValidator interface {
	ValidateAccessToken(token string) (string, error)
}

// RouterDeps bundles everything the router mounts.
type RouterDeps struct {
	Logger      *slog.Logger
	CORS        config.CORSConfig
	Metrics     *metrics.Registry
	Limiter     *middleware.RateLimiter
	RateLimit   int
	Validator   tokenValidator
	Preferences *PreferenceHandler
	Donations   *DonationHandler
	Charities   *CharityHandler
	Health      *HealthHandler
}

// NewRouter mounts all routes behind the middleware chain. The metrics
// route label is the registered pattern, so cardinality stays bounded no
// matter what paths clients probe.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	handle := func(pattern, route string, h http.HandlerFunc, extra ...middleware.Middleware) {
		var wrapped http.Handler = h
		if d.Metrics != nil {
			wrapped = middleware.Metrics(d.Metrics, route)(wrapped)
		}
		for i := len(extra) - 1; i >= 0; i-- {
			wrapped = extra[i](wrapped)
		}
		mux.Handle(pattern, wrapped)
	}

	limit := func(next http.Handler) http.Handler { return next }
	if d.Limiter != nil && d.RateLimit > 0 {
		limit = d.Limiter.Limit(d.RateLimit)
	}

	handle("POST /api/v1/preferences", "/api/v1/preferences", d.Preferences.Add)
	handle("DELETE /api/v1/preferences/{charityID}", "/api/v1/preferences/{charityID}", d.Preferences.Remove)
	handle("PUT /api/v1/preferences/allocations", "/api/v1/preferences/allocations", d.Preferences.SetAllocations)
	handle("POST /api/v1/preferences/rebalance", "/api/v1/preferences/rebalance", d.Preferences.Rebalance)
	handle("GET /api/v1/distribution", "/api/v1/distribution", d.Preferences.Distribution)

	handle("POST /api/v1/donations/distribute", "/api/v1/donations/distribute", d.Donations.Distribute, limit)
	handle("GET /api/v1/donations/stats", "/api/v1/donations/stats", d.Donations.Stats)
	handle("GET /api/v1/donations/recent", "/api/v1/donations/recent", d.Donations.Recent)
	handle("GET /api/v1/donations/total", "/api/v1/donations/total", d.Donations.Total)

	handle("GET /api/v1/charities/{charityID}", "/api/v1/charities/{charityID}", d.Charities.Get)

	handle("GET /healthz", "/healthz", d.Health.Healthz)
	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics.Handler())
	}

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(d.Logger),
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
		middleware.Auth(d.Validator),
	)

	return chain(mux)
}
