// Package preference implements the charity preference repository (the
// allocation store's data layer) using PostgreSQL.
package preference

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/buy4good/backend/internal/adapter/postgres"
	"github.com/buy4good/backend/internal/domain"
)

// Repo provides charity preference persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new preference repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const prefColumns = `id, user_id, charity_id, allocation_percentage, is_active, created_at, updated_at`

// Creation order is the tie-break everywhere percentages need a deterministic
// ordering (remainder assignment, chart colors), so every listing query
// shares this ORDER BY.
const listActiveSQL = `
SELECT ` + prefColumns + `
FROM charity_preferences
WHERE user_id = $1 AND is_active
ORDER BY created_at, id`

const countActiveSQL = `
SELECT count(*) FROM charity_preferences
WHERE user_id = $1 AND is_active`

const insertSQL = `
INSERT INTO charity_preferences (` + prefColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + prefColumns

const deactivateSQL = `
UPDATE charity_preferences
SET is_active = false, updated_at = $3
WHERE user_id = $1 AND charity_id = $2 AND is_active`

const setPercentageSQL = `
UPDATE charity_preferences
SET allocation_percentage = $3, updated_at = $4
WHERE user_id = $1 AND charity_id = $2 AND is_active`

// ListActive returns the user's active preferences in stable creation order.
func (r *Repo) ListActive(ctx context.Context, userID string) ([]domain.CharityPreference, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listActiveSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list active preferences: %w", err)
	}
	defer rows.Close()

	prefs, err := scanPreferences(rows)
	if err != nil {
		return nil, fmt.Errorf("list active preferences: %w", err)
	}

	return prefs, nil
}

// CountActive returns the number of active preferences for the user.
func (r *Repo) CountActive(ctx context.Context, userID string) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := querier.QueryRow(ctx, countActiveSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active preferences: %w", err)
	}

	return count, nil
}

// Create inserts a new active preference with a zero allocation percentage.
// A second active preference for the same (user, charity) trips the partial
// unique index and surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, userID, charityID string) (domain.CharityPreference, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	row := querier.QueryRow(ctx, insertSQL, id, userID, charityID, 0.0, true, now, now)

	pref, err := scanPreference(row)
	if err != nil {
		return domain.CharityPreference{}, postgres.MapError(err, "preference", charityID)
	}

	return pref, nil
}

// Deactivate soft-deletes the active preference for (user, charity).
// Returns domain.ErrNotFound if no active preference exists.
func (r *Repo) Deactivate(ctx context.Context, userID, charityID string) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, deactivateSQL, userID, charityID, time.Now().UTC())
	if err != nil {
		return postgres.MapError(err, "preference", charityID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("preference %s: %w", charityID, domain.ErrNotFound)
	}

	return nil
}

// SetPercentage updates the allocation percentage of the user's active
// preference for the given charity.
// Returns domain.ErrNotFound if no active preference exists.
func (r *Repo) SetPercentage(ctx context.Context, userID, charityID string, percentage float64) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, setPercentageSQL, userID, charityID, percentage, time.Now().UTC())
	if err != nil {
		return postgres.MapError(err, "preference", charityID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("preference %s: %w", charityID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanPreferences(rows pgx.Rows) ([]domain.CharityPreference, error) {
	var prefs []domain.CharityPreference
	for rows.Next() {
		p, err := scanPreference(rows)
		if err != nil {
			return nil, err
		}
		prefs = append(prefs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if prefs == nil {
		prefs = []domain.CharityPreference{}
	}

	return prefs, nil
}

func scanPreference(row pgx.Row) (domain.CharityPreference, error) {
	var p domain.CharityPreference
	if err := row.Scan(&p.ID, &p.UserID, &p.CharityID, &p.AllocationPercentage,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.CharityPreference{}, err
	}
	return p, nil
}
