// Package donation implements the donation ledger repository using
// PostgreSQL. The ledger is append-only: records are inserted once,
// never updated or deleted.
package donation

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	postgres "github.com/buy4good/backend/internal/adapter/postgres"
	"github.com/buy4good/backend/internal/domain"
)

// Repo provides donation record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new donation ledger repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var donationColumns = []string{
	"id", "user_id", "charity_id", "donation_amount", "donation_date",
	"original_transaction_id", "merchant_name", "product_name", "created_at",
}

const insertIfAbsentSQL = `
INSERT INTO donation_records
  (id, user_id, charity_id, donation_amount, donation_date,
   original_transaction_id, merchant_name, product_name, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO NOTHING`

const totalForUserSQL = `
SELECT COALESCE(sum(donation_amount), 0) FROM donation_records
WHERE user_id = $1`

const countDistinctCharitiesSQL = `
SELECT count(DISTINCT charity_id) FROM donation_records
WHERE user_id = $1`

const countDistinctTransactionsSQL = `
SELECT count(DISTINCT original_transaction_id) FROM donation_records
WHERE user_id = $1`

// InsertIfAbsent inserts the record unless one with the same id already
// exists, and reports whether a row was created. The primary key makes
// concurrent duplicate inserts race safely: exactly one writer wins, the
// rest observe created=false.
func (r *Repo) InsertIfAbsent(ctx context.Context, rec domain.DonationRecord) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, insertIfAbsentSQL,
		rec.ID, rec.UserID, rec.CharityID, rec.DonationAmount, rec.DonationDate,
		rec.OriginalTransactionID, rec.MerchantName, rec.ProductName, rec.CreatedAt)
	if err != nil {
		return false, postgres.MapError(err, "donation", rec.ID.String())
	}

	return tag.RowsAffected() == 1, nil
}

// TotalForUser returns the sum of all donation amounts recorded for the user.
func (r *Repo) TotalForUser(ctx context.Context, userID string) (decimal.Decimal, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var total decimal.Decimal
	if err := querier.QueryRow(ctx, totalForUserSQL, userID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total donations: %w", err)
	}

	return total, nil
}

// RecentForUser returns up to limit of the user's donation records, newest
// first; a non-positive limit returns everything. Within one donation date,
// insertion order (created_at, id) keeps the transaction grouping
// deterministic.
func (r *Repo) RecentForUser(ctx context.Context, userID string, limit int) ([]domain.DonationRecord, error) {
	query := psql.Select(donationColumns...).
		From("donation_records").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("donation_date DESC", "created_at DESC", "id")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build donations query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer rows.Close()

	recs, err := scanRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}

	return recs, nil
}

// CountDistinctCharities returns how many distinct charities the user has
// ever donated to ("causes supported").
func (r *Repo) CountDistinctCharities(ctx context.Context, userID string) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := querier.QueryRow(ctx, countDistinctCharitiesSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count distinct charities: %w", err)
	}

	return count, nil
}

// CountDistinctTransactions returns how many distinct originating purchases
// the user's donations trace back to ("total purchases").
func (r *Repo) CountDistinctTransactions(ctx context.Context, userID string) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := querier.QueryRow(ctx, countDistinctTransactionsSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count distinct transactions: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanRecords(rows pgx.Rows) ([]domain.DonationRecord, error) {
	var recs []domain.DonationRecord
	for rows.Next() {
		var rec domain.DonationRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.CharityID, &rec.DonationAmount,
			&rec.DonationDate, &rec.OriginalTransactionID, &rec.MerchantName,
			&rec.ProductName, &rec.CreatedAt); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if recs == nil {
		recs = []domain.DonationRecord{}
	}

	return recs, nil
}
