// Package walletrepo manages repository layer of wallets.
package walletrepo

import (
	"context"
	"database/sql"

	"github.com/go-wallet/walletd/internal/domain"
	"github.com/go-wallet/walletd/internal/transactionrepo"
	"github.com/go-wallet/walletd/pkg/dbpkg"
	"github.com/go-wallet/walletd/pkg/errorspkg"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates wallet repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns wallet RepoPGS scoped to an open unit of work.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

// NewRepoPGS returns wallet RepoPGS with connection to start units of work.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{db: db, conn: db}
}

const createQuery = `
INSERT INTO
    wallets (id, username, balance)
VALUES
    ($1, $2, $3)
RETURNING id, username, balance, created_at, updated_at
`

// Create creates the wallet and then returns it.
func (r *RepoPGS) Create(ctx context.Context, username, balance string) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, uuid.NewString(), username, balance)

	var w domain.Wallet

	err := row.Scan(
		&w.ID,
		&w.Username,
		&w.Balance,
		&w.CreatedAt,
		&w.UpdatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "wallets_username_key":
				return w, domain.ErrUsernameTaken
			case "wallets_balance_check":
				return w, domain.ErrNegativeBalance
			}
		}

		return w, errorspkg.ErrInternal
	}

	return w, nil
}

const getQuery = `
SELECT
	id, username, balance, created_at, updated_at
FROM wallets
WHERE id = $1
`

// Get returns the wallet with the given id.
func (r *RepoPGS) Get(ctx context.Context, id string) (domain.Wallet, error) {
	return r.scanOne(ctx, domain.ErrWalletNotFound, getQuery, id)
}

const getByUsernameQuery = `
SELECT
	id, username, balance, created_at, updated_at
FROM wallets
WHERE username = $1
`

// GetByUsername returns the wallet owned by the given username.
func (r *RepoPGS) GetByUsername(ctx context.Context, username string) (domain.Wallet, error) {
	return r.scanOne(ctx, domain.ErrUserNotFound, getByUsernameQuery, username)
}

func (r *RepoPGS) scanOne(ctx context.Context, notFound error, query string, arg any) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)

	var w domain.Wallet

	err := row.Scan(
		&w.ID,
		&w.Username,
		&w.Balance,
		&w.CreatedAt,
		&w.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return w, notFound
		}

		l.Error().Err(err).Send()

		return w, errorspkg.ErrInternal
	}

	return w, nil
}

const updateBalanceQuery = `
UPDATE wallets
SET balance = $1, updated_at = now()
WHERE id = $2
RETURNING id, username, balance, created_at, updated_at
`

// UpdateBalance sets the wallet's balance and returns the updated wallet.
func (r *RepoPGS) UpdateBalance(ctx context.Context, id, balance string) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateBalanceQuery, balance, id)

	var w domain.Wallet

	err := row.Scan(
		&w.ID,
		&w.Username,
		&w.Balance,
		&w.CreatedAt,
		&w.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return w, domain.ErrWalletNotFound
		}

		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "wallets_balance_check" {
				return w, domain.ErrNegativeBalance
			}
		}

		return w, errorspkg.ErrInternal
	}

	return w, nil
}

const addBalanceQuery = `
UPDATE wallets
SET balance = balance + $1, updated_at = now()
WHERE id = $2
RETURNING id, username, balance, created_at, updated_at
`

// AddBalance changes the wallet's balance by the given signed amount and
// returns the changed wallet. A change that would drive the balance below
// zero fails with ErrInsufficientFunds.
func (r *RepoPGS) AddBalance(ctx context.Context, amount, id string) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, addBalanceQuery, amount, id)

	var w domain.Wallet

	err := row.Scan(
		&w.ID,
		&w.Username,
		&w.Balance,
		&w.CreatedAt,
		&w.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return w, domain.ErrWalletNotFound
		}

		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "wallets_balance_check" {
				return w, domain.ErrInsufficientFunds
			}
		}

		return w, errorspkg.ErrInternal
	}

	return w, nil
}

const listQuery = `
SELECT
	id, username, balance, created_at, updated_at
FROM wallets
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

// List returns the specified page of wallets, newest first.
func (r *RepoPGS) List(ctx context.Context, limit, offset int32) ([]domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Wallet{}

	for rows.Next() {
		var w domain.Wallet
		if err := rows.Scan(&w.ID, &w.Username, &w.Balance, &w.CreatedAt, &w.UpdatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, w)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const listAllQuery = `
SELECT
	id, username, balance, created_at, updated_at
FROM wallets
ORDER BY id
`

// ListAll returns every wallet. Used by the interest accrual job, which must
// span all wallets in one unit of work.
func (r *RepoPGS) ListAll(ctx context.Context) ([]domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listAllQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Wallet{}

	for rows.Next() {
		var w domain.Wallet
		if err := rows.Scan(&w.ID, &w.Username, &w.Balance, &w.CreatedAt, &w.UpdatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, w)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const deleteQuery = `
DELETE FROM wallets
WHERE id = $1
`

// Delete removes the wallet with the given id. Wallets referenced by any
// transaction are protected by foreign keys and fail with
// ErrWalletHasTransactions.
func (r *RepoPGS) Delete(ctx context.Context, id string) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "transactions_from_wallet_id_fkey", "transactions_to_wallet_id_fkey":
				return domain.ErrWalletHasTransactions
			}
		}

		return errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if n == 0 {
		return domain.ErrWalletNotFound
	}

	return nil
}

// CreateWithDeposit creates the wallet and, when the initial balance is not
// zero, records the matching initial_deposit transaction. Both records are
// written in a single unit of work.
func (r *RepoPGS) CreateWithDeposit(ctx context.Context, username, balance, description string) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	var w domain.Wallet

	err := dbpkg.ExecTx(ctx, r.conn, func(tx dbpkg.SQLInterface) error {
		walletRepo := NewTxRepoPGS(tx)
		transactionRepo := transactionrepo.NewRepoPGS(tx)

		var err error

		w, err = walletRepo.Create(ctx, username, balance)
		if err != nil {
			return err
		}

		if balance == "0" {
			return nil
		}

		_, err = transactionRepo.Create(ctx, domain.CreateTransactionParams{
			ToWalletID:  w.ID,
			Amount:      balance,
			Type:        domain.TypeInitialDeposit,
			Description: description,
		})

		return err
	})

	if err != nil {
		l.Error().Err(err).Send()
		return domain.Wallet{}, err
	}

	return w, nil
}

const countQuery = `
SELECT count(*) FROM wallets
`

// Count returns the total number of wallets.
func (r *RepoPGS) Count(ctx context.Context) (int64, error) {
	l := zerolog.Ctx(ctx)

	var n int64
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&n); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return n, nil
}
