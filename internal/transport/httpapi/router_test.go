package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buy4good/backend/internal/config"
	"github.com/buy4good/backend/internal/domain"
	"github.com/buy4good/backend/internal/metrics"
	"github.com/buy4good/backend/pkg/ctxutil"
)

type validatorMock struct {
	userID string
	err    error
}

func (m *validatorMock) ValidateAccessToken(token string) (string, error) {
	return m.userID, m.err
}

func newTestRouter(t *testing.T, validator tokenValidator) http.Handler {
	t.Helper()

	alloc := &allocationServiceMock{
		distributionFunc: func(ctx context.Context) ([]domain.CharityShare, error) {
			if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
				return nil, domain.ErrUnauthorized
			}
			return []domain.CharityShare{{CharityID: "a", Percentage: 100}}, nil
		},
	}

	return NewRouter(RouterDeps{
		Logger:      newTestLogger(),
		CORS:        config.CORSConfig{AllowedOrigins: "*"},
		Metrics:     metrics.NewRegistry(),
		Validator:   validator,
		Preferences: NewPreferenceHandler(alloc, newTestLogger()),
		Donations:   NewDonationHandler(&donationServiceMock{}, nil, newTestLogger()),
		Charities:   NewCharityHandler(&charityServiceMock{}, newTestLogger()),
		Health:      NewHealthHandler(&dbPingerMock{}, "test"),
	})
}

func TestRouter_HealthzWithoutAuth(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, &validatorMock{err: errors.New("should not be called")})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRouter_AuthenticatedDistribution(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, &validatorMock{userID: "user-1"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/distribution", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_InvalidTokenRejected(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, &validatorMock{err: errors.New("bad signature")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/distribution", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouter_MissingTokenIsAnonymous(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, &validatorMock{userID: "user-1"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/distribution", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous request to a user route must be 401, got %d", rec.Code)
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, &validatorMock{userID: "user-1"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, &validatorMock{userID: "user-1"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}
