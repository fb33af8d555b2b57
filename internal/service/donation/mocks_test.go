package donation

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/buy4good/backend/internal/domain"
)

var _ distributionSource = &distributionSourceMock{}

type distributionSourceMock struct {
	GetDistributionFunc func(ctx context.Context) ([]domain.CharityShare, error)

	calls struct {
		GetDistribution []struct {
			Ctx context.Context
		}
	}
	lock sync.RWMutex
}

func (mock *distributionSourceMock) GetDistribution(ctx context.Context) ([]domain.CharityShare, error) {
	if mock.GetDistributionFunc == nil {
		panic("distributionSourceMock.GetDistributionFunc: method is nil but distributionSource.GetDistribution was just called")
	}
	mock.lock.Lock()
	mock.calls.GetDistribution = append(mock.calls.GetDistribution, struct {
		Ctx context.Context
	}{Ctx: ctx})
	mock.lock.Unlock()
	return mock.GetDistributionFunc(ctx)
}

func (mock *distributionSourceMock) GetDistributionCalls() []struct {
	Ctx context.Context
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetDistribution
}

var _ ledgerRepo = &ledgerRepoMock{}

type ledgerRepoMock struct {
	InsertIfAbsentFunc            func(ctx context.Context, rec domain.DonationRecord) (bool, error)
	TotalForUserFunc              func(ctx context.Context, userID string) (decimal.Decimal, error)
	RecentForUserFunc             func(ctx context.Context, userID string, limit int) ([]domain.DonationRecord, error)
	CountDistinctCharitiesFunc    func(ctx context.Context, userID string) (int, error)
	CountDistinctTransactionsFunc func(ctx context.Context, userID string) (int, error)

	calls struct {
		InsertIfAbsent []struct {
			Ctx context.Context
			Rec domain.DonationRecord
		}
		TotalForUser []struct {
			Ctx    context.Context
			UserID string
		}
		RecentForUser []struct {
			Ctx    context.Context
			UserID string
			Limit  int
		}
		CountDistinctCharities []struct {
			Ctx    context.Context
			UserID string
		}
		CountDistinctTransactions []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lock sync.RWMutex
}

func (mock *ledgerRepoMock) InsertIfAbsent(ctx context.Context, rec domain.DonationRecord) (bool, error) {
	if mock.InsertIfAbsentFunc == nil {
		panic("ledgerRepoMock.InsertIfAbsentFunc: method is nil but ledgerRepo.InsertIfAbsent was just called")
	}
	mock.lock.Lock()
	mock.calls.InsertIfAbsent = append(mock.calls.InsertIfAbsent, struct {
		Ctx context.Context
		Rec domain.DonationRecord
	}{Ctx: ctx, Rec: rec})
	mock.lock.Unlock()
	return mock.InsertIfAbsentFunc(ctx, rec)
}

func (mock *ledgerRepoMock) InsertIfAbsentCalls() []struct {
	Ctx context.Context
	Rec domain.DonationRecord
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.InsertIfAbsent
}

func (mock *ledgerRepoMock) TotalForUser(ctx context.Context, userID string) (decimal.Decimal, error) {
	if mock.TotalForUserFunc == nil {
		panic("ledgerRepoMock.TotalForUserFunc: method is nil but ledgerRepo.TotalForUser was just called")
	}
	mock.lock.Lock()
	mock.calls.TotalForUser = append(mock.calls.TotalForUser, struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID})
	mock.lock.Unlock()
	return mock.TotalForUserFunc(ctx, userID)
}

func (mock *ledgerRepoMock) TotalForUserCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.TotalForUser
}

func (mock *ledgerRepoMock) RecentForUser(ctx context.Context, userID string, limit int) ([]domain.DonationRecord, error) {
	if mock.RecentForUserFunc == nil {
		panic("ledgerRepoMock.RecentForUserFunc: method is nil but ledgerRepo.RecentForUser was just called")
	}
	mock.lock.Lock()
	mock.calls.RecentForUser = append(mock.calls.RecentForUser, struct {
		Ctx    context.Context
		UserID string
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit})
	mock.lock.Unlock()
	return mock.RecentForUserFunc(ctx, userID, limit)
}

func (mock *ledgerRepoMock) RecentForUserCalls() []struct {
	Ctx    context.Context
	UserID string
	Limit  int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RecentForUser
}

func (mock *ledgerRepoMock) CountDistinctCharities(ctx context.Context, userID string) (int, error) {
	if mock.CountDistinctCharitiesFunc == nil {
		panic("ledgerRepoMock.CountDistinctCharitiesFunc: method is nil but ledgerRepo.CountDistinctCharities was just called")
	}
	mock.lock.Lock()
	mock.calls.CountDistinctCharities = append(mock.calls.CountDistinctCharities, struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID})
	mock.lock.Unlock()
	return mock.CountDistinctCharitiesFunc(ctx, userID)
}

func (mock *ledgerRepoMock) CountDistinctCharitiesCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountDistinctCharities
}

func (mock *ledgerRepoMock) CountDistinctTransactions(ctx context.Context, userID string) (int, error) {
	if mock.CountDistinctTransactionsFunc == nil {
		panic("ledgerRepoMock.CountDistinctTransactionsFunc: method is nil but ledgerRepo.CountDistinctTransactions was just called")
	}
	mock.lock.Lock()
	mock.calls.CountDistinctTransactions = append(mock.calls.CountDistinctTransactions, struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID})
	mock.lock.Unlock()
	return mock.CountDistinctTransactionsFunc(ctx, userID)
}

func (mock *ledgerRepoMock) CountDistinctTransactionsCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountDistinctTransactions
}
