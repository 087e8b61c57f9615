// Package interestrepo manages repository layer of interest accrual.
package interestrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-wallet/walletd/internal/domain"
	"github.com/go-wallet/walletd/internal/transactionrepo"
	"github.com/go-wallet/walletd/internal/walletrepo"
	"github.com/go-wallet/walletd/pkg/dbpkg"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RepoPGS facilitates interest accrual repository layer logic.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns interest RepoPGS with connection to start units of work.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{conn: db}
}

// AccrueAll applies the daily rate to every wallet balance in one unit of
// work. No wallet receives interest unless every wallet's update in the run
// is durably recorded. Wallets whose interest comes to zero are skipped.
func (r *RepoPGS) AccrueAll(ctx context.Context, dailyRate decimal.Decimal) (domain.InterestRunResult, error) {
	l := zerolog.Ctx(ctx)

	result := domain.InterestRunResult{TotalInterest: "0"}

	err := dbpkg.ExecTx(ctx, r.conn, func(tx dbpkg.SQLInterface) error {
		walletRepo := walletrepo.NewTxRepoPGS(tx)
		transactionRepo := transactionrepo.NewRepoPGS(tx)

		wallets, err := walletRepo.ListAll(ctx)
		if err != nil {
			return err
		}

		totalInterest := decimal.Zero

		for _, w := range wallets {
			balance, err := decimal.NewFromString(w.Balance)
			if err != nil {
				return fmt.Errorf("wallet %s: malformed balance %q", w.ID, w.Balance)
			}

			interest := balance.Mul(dailyRate)
			if interest.IsZero() {
				continue
			}

			if _, err := walletRepo.AddBalance(ctx, interest.String(), w.ID); err != nil {
				return err
			}

			params := domain.CreateTransactionParams{
				Amount: interest.Abs().String(),
			}

			if interest.IsPositive() {
				params.ToWalletID = w.ID
				params.Type = domain.TypeInterestCredit
				params.Description = fmt.Sprintf("daily interest credit: %s", interest)
			} else {
				params.FromWalletID = w.ID
				params.Type = domain.TypeInterestDebit
				params.Description = fmt.Sprintf("daily interest debit: %s", interest.Abs())
			}

			if _, err := transactionRepo.Create(ctx, params); err != nil {
				return err
			}

			totalInterest = totalInterest.Add(interest)
			result.ProcessedCount++
		}

		result.TotalInterest = totalInterest.String()

		return nil
	})

	if err != nil {
		l.Error().Err(err).Send()
		return domain.InterestRunResult{TotalInterest: "0"}, err
	}

	return result, nil
}
