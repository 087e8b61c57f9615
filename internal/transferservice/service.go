// Package transferservice manages business logic layer of transfers.
//
// All validation happens before the unit of work opens; the repository layer
// only ever sees well-formed requests.
package transferservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-wallet/walletd/internal/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by transfer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Repo interface {
	Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferTxResult, error)
	ThirdPartyPayment(ctx context.Context, arg domain.ThirdPartyTxParams) (domain.ThirdPartyTxResult, error)
	ThirdPartyReceipt(ctx context.Context, arg domain.ThirdPartyTxParams) (domain.ThirdPartyTxResult, error)
}

// WalletService provides the wallet lookups needed to resolve usernames.
type WalletService interface {
	GetByUsername(ctx context.Context, username string) (domain.Wallet, error)
}

// Service facilitates transfer service layer logic.
type Service struct {
	repo          Repo
	walletService WalletService
}

// New returns transfer service struct to manage transfer bussines logic.
func New(tr Repo, ws WalletService) *Service {
	return &Service{
		repo:          tr,
		walletService: ws,
	}
}

// validAmount checks that amount is a positive decimal with at most 2
// fractional digits.
func validAmount(ctx context.Context, amount string) error {
	l := zerolog.Ctx(ctx)

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.ErrInvalidAmount
	}

	if amountDecimal.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}

	if amountDecimal.Exponent() < -2 {
		return domain.ErrAmountPrecision
	}

	return nil
}

// Transfer checks if the transfer request is valid and then executes it as a
// single unit of work.
func (s *Service) Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferTxResult, error) {
	if arg.FromWalletID == arg.ToWalletID {
		return domain.TransferTxResult{}, domain.ErrSelfTransfer
	}

	if err := validAmount(ctx, arg.Amount); err != nil {
		return domain.TransferTxResult{}, err
	}

	return s.repo.Transfer(ctx, arg)
}

// TransferByUsername resolves both usernames to wallets and then executes the
// same transfer algorithm.
func (s *Service) TransferByUsername(ctx context.Context, fromUsername, toUsername, amount, description string) (domain.TransferTxResult, error) {
	l := zerolog.Ctx(ctx)

	if fromUsername == toUsername {
		return domain.TransferTxResult{}, domain.ErrSelfTransfer
	}

	if err := validAmount(ctx, amount); err != nil {
		return domain.TransferTxResult{}, err
	}

	fromWallet, err := s.walletService.GetByUsername(ctx, fromUsername)
	if err != nil {
		l.Info().Err(err).Str("username", fromUsername).Send()
		return domain.TransferTxResult{}, err
	}

	toWallet, err := s.walletService.GetByUsername(ctx, toUsername)
	if err != nil {
		l.Info().Err(err).Str("username", toUsername).Send()
		return domain.TransferTxResult{}, err
	}

	return s.repo.Transfer(ctx, domain.CreateTransferParams{
		FromWalletID: fromWallet.ID,
		ToWalletID:   toWallet.ID,
		Amount:       amount,
		Description:  description,
	})
}

// ThirdPartyParams is the input data for third-party payment and receipt
// operations. The wallet may be addressed by id or by username.
type ThirdPartyParams struct {
	WalletID    string
	Username    string
	Amount      string
	PartyID     string
	PartyName   string
	Description string
}

// ThirdPartyPayment debits the wallet in favor of the named external party.
func (s *Service) ThirdPartyPayment(ctx context.Context, arg ThirdPartyParams) (domain.ThirdPartyTxResult, error) {
	txArg, err := s.validThirdPartyRequest(ctx, arg)
	if err != nil {
		return domain.ThirdPartyTxResult{}, err
	}

	if txArg.Description == "" {
		txArg.Description = fmt.Sprintf("payment to %s (ID: %s)", arg.PartyName, arg.PartyID)
	}

	return s.repo.ThirdPartyPayment(ctx, txArg)
}

// ThirdPartyReceipt credits the wallet with funds from the named external party.
func (s *Service) ThirdPartyReceipt(ctx context.Context, arg ThirdPartyParams) (domain.ThirdPartyTxResult, error) {
	txArg, err := s.validThirdPartyRequest(ctx, arg)
	if err != nil {
		return domain.ThirdPartyTxResult{}, err
	}

	if txArg.Description == "" {
		txArg.Description = fmt.Sprintf("receipt from %s (ID: %s)", arg.PartyName, arg.PartyID)
	}

	return s.repo.ThirdPartyReceipt(ctx, txArg)
}

func (s *Service) validThirdPartyRequest(ctx context.Context, arg ThirdPartyParams) (domain.ThirdPartyTxParams, error) {
	if strings.TrimSpace(arg.PartyID) == "" || strings.TrimSpace(arg.PartyName) == "" {
		return domain.ThirdPartyTxParams{}, domain.ErrMissingThirdParty
	}

	if err := validAmount(ctx, arg.Amount); err != nil {
		return domain.ThirdPartyTxParams{}, err
	}

	walletID := arg.WalletID
	if walletID == "" {
		if arg.Username == "" {
			return domain.ThirdPartyTxParams{}, domain.ErrWalletNotFound
		}

		wallet, err := s.walletService.GetByUsername(ctx, arg.Username)
		if err != nil {
			return domain.ThirdPartyTxParams{}, err
		}

		walletID = wallet.ID
	}

	return domain.ThirdPartyTxParams{
		WalletID:    walletID,
		Amount:      arg.Amount,
		PartyID:     arg.PartyID,
		PartyName:   arg.PartyName,
		Description: arg.Description,
	}, nil
}
