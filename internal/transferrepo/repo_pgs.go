// Package transferrepo manages repository layer of balance transfers.
//
// It composes the wallet and transaction repositories into single units of
// work: every balance mutation commits together with the transaction record
// describing it, or not at all.
package transferrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-wallet/walletd/internal/domain"
	"github.com/go-wallet/walletd/internal/transactionrepo"
	"github.com/go-wallet/walletd/internal/walletrepo"
	"github.com/go-wallet/walletd/pkg/dbpkg"
	"github.com/go-wallet/walletd/pkg/errorspkg"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RepoPGS facilitates transfer repository layer logic.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns transfer RepoPGS with connection to start units of work.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{conn: db}
}

// Transfer moves money between two wallets.
//
// It debits the sender, credits the receiver and records the transfer
// transaction within a single unit of work.
func (r *RepoPGS) Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.TransferTxResult

	err := dbpkg.ExecTx(ctx, r.conn, func(tx dbpkg.SQLInterface) error {
		walletRepo := walletrepo.NewTxRepoPGS(tx)
		transactionRepo := transactionrepo.NewRepoPGS(tx)

		fromWallet, err := walletRepo.Get(ctx, arg.FromWalletID)
		if err != nil {
			return err
		}

		toWallet, err := walletRepo.Get(ctx, arg.ToWalletID)
		if err != nil {
			return err
		}

		if err := checkFunds(fromWallet, arg.Amount); err != nil {
			return err
		}

		description := arg.Description
		if description == "" {
			description = fmt.Sprintf("transfer from %s to %s", fromWallet.Username, toWallet.Username)
		}

		// To avoid deadlocks execute balance updates in consistent id order.
		if arg.FromWalletID < arg.ToWalletID {
			result.FromWallet, err = walletRepo.AddBalance(ctx, "-"+arg.Amount, arg.FromWalletID)
			if err == nil {
				result.ToWallet, err = walletRepo.AddBalance(ctx, arg.Amount, arg.ToWalletID)
			}
		} else {
			result.ToWallet, err = walletRepo.AddBalance(ctx, arg.Amount, arg.ToWalletID)
			if err == nil {
				result.FromWallet, err = walletRepo.AddBalance(ctx, "-"+arg.Amount, arg.FromWalletID)
			}
		}

		if err != nil {
			return err
		}

		result.Transaction, err = transactionRepo.Create(ctx, domain.CreateTransactionParams{
			FromWalletID: arg.FromWalletID,
			ToWalletID:   arg.ToWalletID,
			Amount:       arg.Amount,
			Type:         domain.TypeTransfer,
			Description:  description,
		})

		return err
	})

	if err != nil {
		l.Info().Err(err).Send()
		return domain.TransferTxResult{}, err
	}

	return result, nil
}

// ThirdPartyPayment debits the wallet in favor of an external party and
// records the matching third_party_payment transaction atomically.
func (r *RepoPGS) ThirdPartyPayment(ctx context.Context, arg domain.ThirdPartyTxParams) (domain.ThirdPartyTxResult, error) {
	return r.thirdPartyTx(ctx, arg, domain.TypeThirdPartyPayment)
}

// ThirdPartyReceipt credits the wallet with funds from an external party and
// records the matching third_party_receipt transaction atomically. The credit
// is unconditional; the external counterpart is not reconciled.
func (r *RepoPGS) ThirdPartyReceipt(ctx context.Context, arg domain.ThirdPartyTxParams) (domain.ThirdPartyTxResult, error) {
	return r.thirdPartyTx(ctx, arg, domain.TypeThirdPartyReceipt)
}

func (r *RepoPGS) thirdPartyTx(ctx context.Context, arg domain.ThirdPartyTxParams, txType domain.TransactionType) (domain.ThirdPartyTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.ThirdPartyTxResult

	err := dbpkg.ExecTx(ctx, r.conn, func(tx dbpkg.SQLInterface) error {
		walletRepo := walletrepo.NewTxRepoPGS(tx)
		transactionRepo := transactionrepo.NewRepoPGS(tx)

		wallet, err := walletRepo.Get(ctx, arg.WalletID)
		if err != nil {
			return err
		}

		params := domain.CreateTransactionParams{
			Amount:      arg.Amount,
			Type:        txType,
			Description: arg.Description,
		}

		if txType == domain.TypeThirdPartyPayment {
			if err := checkFunds(wallet, arg.Amount); err != nil {
				return err
			}

			result.Wallet, err = walletRepo.AddBalance(ctx, "-"+arg.Amount, arg.WalletID)
			params.FromWalletID = arg.WalletID
		} else {
			result.Wallet, err = walletRepo.AddBalance(ctx, arg.Amount, arg.WalletID)
			params.ToWalletID = arg.WalletID
		}

		if err != nil {
			return err
		}

		result.Transaction, err = transactionRepo.Create(ctx, params)

		return err
	})

	if err != nil {
		l.Info().Err(err).Send()
		return domain.ThirdPartyTxResult{}, err
	}

	return result, nil
}

func checkFunds(w domain.Wallet, amount string) error {
	balanceDecimal, err := decimal.NewFromString(w.Balance)
	if err != nil {
		return errorspkg.ErrInternal
	}

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.ErrInvalidAmount
	}

	if balanceDecimal.LessThan(amountDecimal) {
		return &domain.InsufficientFundsError{
			CurrentBalance:  w.Balance,
			RequestedAmount: amount,
		}
	}

	return nil
}
