// Package walletservice manages business logic layer of wallets.
package walletservice

import (
	"context"
	"strings"

	"github.com/go-wallet/walletd/internal/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by wallet service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package walletservice
type Repo interface {
	CreateWithDeposit(ctx context.Context, username, balance, description string) (domain.Wallet, error)
	Get(ctx context.Context, id string) (domain.Wallet, error)
	GetByUsername(ctx context.Context, username string) (domain.Wallet, error)
	UpdateBalance(ctx context.Context, id, balance string) (domain.Wallet, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int32) ([]domain.Wallet, error)
}

// Service facilitates wallet service layer logic.
type Service struct {
	repo Repo
}

// New returns wallet service struct to manage wallet bussines logic.
func New(wr Repo) *Service {
	return &Service{repo: wr}
}

const (
	minUsernameLen = 2
	maxUsernameLen = 50
)

// Create creates a wallet for the given username. A non-zero initial balance
// is recorded together with its initial_deposit transaction in one unit of
// work.
func (s *Service) Create(ctx context.Context, username, initialBalance string) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	username = strings.TrimSpace(username)
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return domain.Wallet{}, domain.ErrInvalidUsername
	}

	if initialBalance == "" {
		initialBalance = "0"
	}

	balance, err := decimal.NewFromString(initialBalance)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Wallet{}, domain.ErrInvalidAmount
	}

	if balance.IsNegative() {
		return domain.Wallet{}, domain.ErrNegativeBalance
	}

	if balance.Exponent() < -2 {
		return domain.Wallet{}, domain.ErrAmountPrecision
	}

	wallet, err := s.repo.CreateWithDeposit(ctx, username, balance.String(), "initial deposit")
	if err != nil {
		return domain.Wallet{}, err
	}

	return wallet, nil
}

// Get returns the wallet with the given id.
func (s *Service) Get(ctx context.Context, id string) (domain.Wallet, error) {
	return s.repo.Get(ctx, id)
}

// GetByUsername returns the wallet owned by the given username.
func (s *Service) GetByUsername(ctx context.Context, username string) (domain.Wallet, error) {
	return s.repo.GetByUsername(ctx, username)
}

// UpdateBalance sets the wallet balance to the given non-negative value.
func (s *Service) UpdateBalance(ctx context.Context, id, balance string) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	b, err := decimal.NewFromString(balance)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Wallet{}, domain.ErrInvalidAmount
	}

	if b.IsNegative() {
		return domain.Wallet{}, domain.ErrNegativeBalance
	}

	return s.repo.UpdateBalance(ctx, id, b.String())
}

// Delete removes the wallet with the given id. Wallets referenced by
// transactions cannot be deleted.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// List returns the requested page of wallets.
func (s *Service) List(ctx context.Context, pageSize, pageID int32) ([]domain.Wallet, error) {
	limit := pageSize
	offset := (pageID - 1) * pageSize

	return s.repo.List(ctx, limit, offset)
}
