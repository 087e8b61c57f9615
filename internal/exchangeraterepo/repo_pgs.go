// Package exchangeraterepo manages repository layer of exchange rate samples.
package exchangeraterepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-wallet/walletd/internal/domain"
	"github.com/go-wallet/walletd/pkg/dbpkg"
	"github.com/go-wallet/walletd/pkg/errorspkg"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates exchange rate repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns exchange rate RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    exchange_rates (id, rate, created_at)
VALUES
    ($1, $2, $3)
RETURNING id, rate, created_at
`

// Create records one rate sample. The timestamp is caller-supplied so that
// backfill can insert synthetic historical timestamps.
func (r *RepoPGS) Create(ctx context.Context, rate string, createdAt time.Time) (domain.ExchangeRate, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, uuid.NewString(), rate, createdAt)

	var s domain.ExchangeRate

	if err := row.Scan(&s.ID, &s.Rate, &s.CreatedAt); err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "exchange_rates_rate_check" {
				return s, domain.ErrInvalidAmount
			}
		}

		return s, errorspkg.ErrInternal
	}

	return s, nil
}

const latestQuery = `
SELECT
	id, rate, created_at
FROM exchange_rates
ORDER BY created_at DESC
LIMIT 1
`

// Latest returns the most recent rate sample.
func (r *RepoPGS) Latest(ctx context.Context) (domain.ExchangeRate, error) {
	l := zerolog.Ctx(ctx)

	var s domain.ExchangeRate

	if err := r.db.QueryRowContext(ctx, latestQuery).Scan(&s.ID, &s.Rate, &s.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return s, domain.ErrRateNotFound
		}

		l.Error().Err(err).Send()

		return s, errorspkg.ErrInternal
	}

	return s, nil
}

const listQuery = `
SELECT
	id, rate, created_at
FROM exchange_rates
ORDER BY created_at DESC
LIMIT $1
`

// List returns up to limit samples, newest first.
func (r *RepoPGS) List(ctx context.Context, limit int32) ([]domain.ExchangeRate, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, limit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.ExchangeRate{}

	for rows.Next() {
		var s domain.ExchangeRate
		if err := rows.Scan(&s.ID, &s.Rate, &s.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, s)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const deleteBeforeQuery = `
DELETE FROM exchange_rates
WHERE created_at < $1
`

// DeleteBefore bulk-deletes samples older than the given time and returns the
// number of deleted rows. This is the only administrative purge in the system.
func (r *RepoPGS) DeleteBefore(ctx context.Context, t time.Time) (int64, error) {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, deleteBeforeQuery, t)
	if err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return n, nil
}
