package allocation

import (
	"context"
	"sync"

	"github.com/buy4good/backend/internal/domain"
)

var _ preferenceRepo = &preferenceRepoMock{}

type preferenceRepoMock struct {
	ListActiveFunc    func(ctx context.Context, userID string) ([]domain.CharityPreference, error)
	CountActiveFunc   func(ctx context.Context, userID string) (int, error)
	CreateFunc        func(ctx context.Context, userID, charityID string) (domain.CharityPreference, error)
	DeactivateFunc    func(ctx context.Context, userID, charityID string) error
	SetPercentageFunc func(ctx context.Context, userID, charityID string, percentage float64) error

	calls struct {
		ListActive []struct {
			Ctx    context.Context
			UserID string
		}
		CountActive []struct {
			Ctx    context.Context
			UserID string
		}
		Create []struct {
			Ctx       context.Context
			UserID    string
			CharityID string
		}
		Deactivate []struct {
			Ctx       context.Context
			UserID    string
			CharityID string
		}
		SetPercentage []struct {
			Ctx        context.Context
			UserID     string
			CharityID  string
			Percentage float64
		}
	}
	lock sync.RWMutex
}

func (mock *preferenceRepoMock) ListActive(ctx context.Context, userID string) ([]domain.CharityPreference, error) {
	if mock.ListActiveFunc == nil {
		panic("preferenceRepoMock.ListActiveFunc: method is nil but preferenceRepo.ListActive was just called")
	}
	mock.lock.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID})
	mock.lock.Unlock()
	return mock.ListActiveFunc(ctx, userID)
}

func (mock *preferenceRepoMock) ListActiveCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListActive
}

func (mock *preferenceRepoMock) CountActive(ctx context.Context, userID string) (int, error) {
	if mock.CountActiveFunc == nil {
		panic("preferenceRepoMock.CountActiveFunc: method is nil but preferenceRepo.CountActive was just called")
	}
	mock.lock.Lock()
	mock.calls.CountActive = append(mock.calls.CountActive, struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID})
	mock.lock.Unlock()
	return mock.CountActiveFunc(ctx, userID)
}

func (mock *preferenceRepoMock) CountActiveCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountActive
}

func (mock *preferenceRepoMock) Create(ctx context.Context, userID, charityID string) (domain.CharityPreference, error) {
	if mock.CreateFunc == nil {
		panic("preferenceRepoMock.CreateFunc: method is nil but preferenceRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx       context.Context
		UserID    string
		CharityID string
	}{Ctx: ctx, UserID: userID, CharityID: charityID})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, userID, charityID)
}

func (mock *preferenceRepoMock) CreateCalls() []struct {
	Ctx       context.Context
	UserID    string
	CharityID string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *preferenceRepoMock) Deactivate(ctx context.Context, userID, charityID string) error {
	if mock.DeactivateFunc == nil {
		panic("preferenceRepoMock.DeactivateFunc: method is nil but preferenceRepo.Deactivate was just called")
	}
	mock.lock.Lock()
	mock.calls.Deactivate = append(mock.calls.Deactivate, struct {
		Ctx       context.Context
		UserID    string
		CharityID string
	}{Ctx: ctx, UserID: userID, CharityID: charityID})
	mock.lock.Unlock()
	return mock.DeactivateFunc(ctx, userID, charityID)
}

func (mock *preferenceRepoMock) DeactivateCalls() []struct {
	Ctx       context.Context
	UserID    string
	CharityID string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Deactivate
}

func (mock *preferenceRepoMock) SetPercentage(ctx context.Context, userID, charityID string, percentage float64) error {
	if mock.SetPercentageFunc == nil {
		panic("preferenceRepoMock.SetPercentageFunc: method is nil but preferenceRepo.SetPercentage was just called")
	}
	mock.lock.Lock()
	mock.calls.SetPercentage = append(mock.calls.SetPercentage, struct {
		Ctx        context.Context
		UserID     string
		CharityID  string
		Percentage float64
	}{Ctx: ctx, UserID: userID, CharityID: charityID, Percentage: percentage})
	mock.lock.Unlock()
	return mock.SetPercentageFunc(ctx, userID, charityID, percentage)
}

func (mock *preferenceRepoMock) SetPercentageCalls() []struct {
	Ctx        context.Context
	UserID     string
	CharityID  string
	Percentage float64
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetPercentage
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the transactional function inline. RunInTxFunc may be
// set to simulate transaction failures.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct {
		Ctx context.Context
	}{Ctx: ctx})
	mock.lock.Unlock()
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}
