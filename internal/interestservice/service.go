// Package interestservice manages business logic layer of interest accrual.
package interestservice

import (
	"context"
	"fmt"

	"github.com/go-wallet/walletd/internal/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by interest service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package interestservice
type Repo interface {
	AccrueAll(ctx context.Context, dailyRate decimal.Decimal) (domain.InterestRunResult, error)
}

// Service facilitates interest accrual service layer logic.
type Service struct {
	repo      Repo
	dailyRate decimal.Decimal
}

// New returns interest service struct with the configured daily rate.
// The rate is a signed fraction and may be zero.
func New(ir Repo, dailyRate string) (*Service, error) {
	rate, err := decimal.NewFromString(dailyRate)
	if err != nil {
		return nil, fmt.Errorf("parse daily interest rate %q: %w", dailyRate, err)
	}

	return &Service{
		repo:      ir,
		dailyRate: rate,
	}, nil
}

// AccrueAll applies the daily rate to every wallet in one unit of work and
// reports how many wallets were processed and the signed interest total.
func (s *Service) AccrueAll(ctx context.Context) (domain.InterestRunResult, error) {
	l := zerolog.Ctx(ctx)

	result, err := s.repo.AccrueAll(ctx, s.dailyRate)
	if err != nil {
		return result, err
	}

	l.Info().
		Int("processed_count", result.ProcessedCount).
		Str("total_interest", result.TotalInterest).
		Msg("daily interest accrual completed")

	return result, nil
}

// Run adapts AccrueAll to the background job runner. The result is logged;
// a failed run is retried at the next scheduled run, never sooner.
func (s *Service) Run(ctx context.Context) error {
	_, err := s.AccrueAll(ctx)
	return err
}
