// Package transactionrepo manages repository layer of transactions.
//
// Transactions are append-only: there is no update or delete operation.
package transactionrepo

import (
	"context"
	"database/sql"

	"github.com/go-wallet/walletd/internal/domain"
	"github.com/go-wallet/walletd/pkg/dbpkg"
	"github.com/go-wallet/walletd/pkg/errorspkg"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates transaction repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns transaction RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    transactions (id, from_wallet_id, to_wallet_id, amount, transaction_type, description)
VALUES
    ($1, $2, $3, $4, $5, $6)
RETURNING id, from_wallet_id, to_wallet_id, amount, transaction_type, description, created_at
`

// Create records the transaction and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	var t domain.Transaction

	if !domain.ValidTransactionType(arg.Type) {
		return t, domain.ErrInvalidTransactionType
	}

	row := r.db.QueryRowContext(ctx, createQuery,
		uuid.NewString(),
		nullString(arg.FromWalletID),
		nullString(arg.ToWalletID),
		arg.Amount,
		arg.Type,
		arg.Description,
	)

	if err := scanTransaction(row, &t); err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "transactions_amount_check":
				return t, domain.ErrInvalidAmount
			case "transactions_from_wallet_id_fkey", "transactions_to_wallet_id_fkey":
				return t, domain.ErrWalletNotFound
			}
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const getQuery = `
SELECT
	id, from_wallet_id, to_wallet_id, amount, transaction_type, description, created_at
FROM transactions
WHERE id = $1
`

// Get returns the transaction with the given id.
func (r *RepoPGS) Get(ctx context.Context, id string) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	var t domain.Transaction

	if err := scanTransaction(r.db.QueryRowContext(ctx, getQuery, id), &t); err != nil {
		if err == sql.ErrNoRows {
			return t, domain.ErrTransactionNotFound
		}

		l.Error().Err(err).Send()

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const listByWalletQuery = `
SELECT
	id, from_wallet_id, to_wallet_id, amount, transaction_type, description, created_at
FROM transactions
WHERE
    (from_wallet_id = $1 OR to_wallet_id = $1)
    AND ($2 = '' OR transaction_type = $2)
ORDER BY created_at DESC
LIMIT $3 OFFSET $4
`

// ListByWallet returns the wallet's transactions, newest first, optionally
// filtered by type.
func (r *RepoPGS) ListByWallet(ctx context.Context, arg domain.ListTransactionsParams) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByWalletQuery,
		arg.WalletID,
		string(arg.Type),
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		var t domain.Transaction
		if err := scanTransactionRows(rows, &t); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const countByWalletQuery = `
SELECT count(*)
FROM transactions
WHERE
    (from_wallet_id = $1 OR to_wallet_id = $1)
    AND ($2 = '' OR transaction_type = $2)
`

// CountByWallet returns the number of the wallet's transactions, optionally
// filtered by type.
func (r *RepoPGS) CountByWallet(ctx context.Context, walletID string, txType domain.TransactionType) (int64, error) {
	l := zerolog.Ctx(ctx)

	var n int64
	if err := r.db.QueryRowContext(ctx, countByWalletQuery, walletID, string(txType)).Scan(&n); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return n, nil
}

const statsQuery = `
SELECT
    count(*),
    count(*) FILTER (WHERE transaction_type = 'transfer'),
    count(*) FILTER (WHERE transaction_type = 'initial_deposit'),
    COALESCE(sum(amount) FILTER (WHERE from_wallet_id = $1), 0),
    COALESCE(sum(amount) FILTER (WHERE to_wallet_id = $1), 0)
FROM transactions
WHERE from_wallet_id = $1 OR to_wallet_id = $1
`

// Stats returns aggregate transaction counts and sums for the wallet.
func (r *RepoPGS) Stats(ctx context.Context, walletID string) (domain.TransactionStats, error) {
	l := zerolog.Ctx(ctx)

	var s domain.TransactionStats

	err := r.db.QueryRowContext(ctx, statsQuery, walletID).Scan(
		&s.TotalTransactions,
		&s.TransferTransactions,
		&s.DepositTransactions,
		&s.TotalSent,
		&s.TotalReceived,
	)
	if err != nil {
		l.Error().Err(err).Send()
		return s, errorspkg.ErrInternal
	}

	return s, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner, t *domain.Transaction) error {
	var from, to sql.NullString

	err := row.Scan(
		&t.ID,
		&from,
		&to,
		&t.Amount,
		&t.Type,
		&t.Description,
		&t.CreatedAt,
	)
	if err != nil {
		return err
	}

	t.FromWalletID = from.String
	t.ToWalletID = to.String

	return nil
}

func scanTransactionRows(rows *sql.Rows, t *domain.Transaction) error {
	return scanTransaction(rows, t)
}
