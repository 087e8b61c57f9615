// Package exchangerateservice manages generation of the simulated exchange
// rate series.
//
// Two modes share one timestamp placement algorithm: the live mode plans the
// current day's samples and persists each when its time arrives, and the
// backfill mode writes whole historical days with synthetic timestamps.
package exchangerateservice

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/go-wallet/walletd/internal/domain"
	"github.com/go-wallet/walletd/pkg/randompkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by exchange rate service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package exchangerateservice
type Repo interface {
	Create(ctx context.Context, rate string, createdAt time.Time) (domain.ExchangeRate, error)
	Latest(ctx context.Context) (domain.ExchangeRate, error)
	List(ctx context.Context, limit int32) ([]domain.ExchangeRate, error)
	DeleteBefore(ctx context.Context, t time.Time) (int64, error)
}

// Config bounds the generated series: the rate band, the daily sampling
// window, the inter-sample spacing and the per-day sample counts.
type Config struct {
	MinRate            int64
	MaxRate            int64
	WindowOpenUTC      int
	WindowCloseUTC     int
	MinInterval        time.Duration
	MaxInterval        time.Duration
	LiveSamplesMin     int
	LiveSamplesMax     int
	BackfillSamplesMin int
	BackfillSamplesMax int
}

// Service facilitates exchange rate service layer logic.
type Service struct {
	repo Repo
	cfg  Config
}

// New returns exchange rate service struct.
func New(rr Repo, cfg Config) *Service {
	return &Service{repo: rr, cfg: cfg}
}

// ErrInvalidDateRange indicates a backfill range whose start is after its end.
var ErrInvalidDateRange = errors.New("start date must not be after end date")

func (s *Service) randomRate() string {
	return decimal.NewFromInt(randompkg.Int64Between(s.cfg.MinRate, s.cfg.MaxRate)).String()
}

// RefreshNow persists exactly one sample at the current time, bypassing the
// window and count logic. Used for immediate refresh.
func (s *Service) RefreshNow(ctx context.Context) (domain.ExchangeRate, error) {
	return s.repo.Create(ctx, s.randomRate(), time.Now().UTC())
}

// Latest returns the most recent sample.
func (s *Service) Latest(ctx context.Context) (domain.ExchangeRate, error) {
	return s.repo.Latest(ctx)
}

// List returns up to limit samples, newest first.
func (s *Service) List(ctx context.Context, limit int32) ([]domain.ExchangeRate, error) {
	return s.repo.List(ctx, limit)
}

// PurgeBefore bulk-deletes samples older than the given time.
func (s *Service) PurgeBefore(ctx context.Context, t time.Time) (int64, error) {
	return s.repo.DeleteBefore(ctx, t)
}

// SampleTimes plans the timestamps for one day: n uniformly-random offsets
// within the sampling window, sorted ascending, then adjusted so that
// consecutive samples are between MinInterval and MaxInterval apart.
func (s *Service) SampleTimes(day time.Time, n int) []time.Time {
	open := time.Date(day.Year(), day.Month(), day.Day(), s.cfg.WindowOpenUTC, 0, 0, 0, time.UTC)
	window := time.Duration(s.cfg.WindowCloseUTC-s.cfg.WindowOpenUTC) * time.Hour

	times := make([]time.Time, n)
	for i := range times {
		times[i] = open.Add(time.Duration(randompkg.Int64Between(0, int64(window)-1)))
	}

	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	s.adjustIntervals(times)

	return times
}

// adjustIntervals walks the sorted sequence once, left to right. A gap below
// MinInterval or above MaxInterval is replaced with a fresh random spacing in
// [MinInterval, MaxInterval], and the resulting shift is applied to all
// subsequent samples so their relative spacing is preserved.
//
// The single pass is intentional: re-running it on already-adjusted data is
// order-dependent, so it must not iterate to a fixed point.
func (s *Service) adjustIntervals(times []time.Time) {
	for i := 1; i < len(times); i++ {
		gap := times[i].Sub(times[i-1])
		if gap >= s.cfg.MinInterval && gap <= s.cfg.MaxInterval {
			continue
		}

		spacing := randompkg.DurationBetween(s.cfg.MinInterval, s.cfg.MaxInterval)
		adjusted := times[i-1].Add(spacing)
		shift := adjusted.Sub(times[i])

		times[i] = adjusted
		for j := i + 1; j < len(times); j++ {
			times[j] = times[j].Add(shift)
		}
	}
}

// generateDay persists one day's worth of samples with the given count bounds.
// A persistence failure for one sample is logged and the loop continues; the
// returned count covers only successfully persisted samples.
func (s *Service) generateDay(ctx context.Context, day time.Time, minSamples, maxSamples int) int {
	l := zerolog.Ctx(ctx)

	times := s.SampleTimes(day, randompkg.IntBetween(minSamples, maxSamples))

	success := 0

	for _, ts := range times {
		if _, err := s.repo.Create(ctx, s.randomRate(), ts); err != nil {
			l.Error().Err(err).Time("sample_at", ts).Msg("failed to persist rate sample")
			continue
		}

		success++
	}

	return success
}

// Backfill generates historical samples for every day in [startDate, endDate]
// inclusive, with synthetic timestamps inside each day's window.
func (s *Service) Backfill(ctx context.Context, startDate, endDate time.Time) (domain.BackfillResult, error) {
	l := zerolog.Ctx(ctx)

	start := startDate.UTC().Truncate(24 * time.Hour)
	end := endDate.UTC().Truncate(24 * time.Hour)

	if start.After(end) {
		return domain.BackfillResult{}, ErrInvalidDateRange
	}

	result := domain.BackfillResult{StartDate: start, EndDate: end}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		result.Count += s.generateDay(ctx, day, s.cfg.BackfillSamplesMin, s.cfg.BackfillSamplesMax)
	}

	l.Info().
		Int("count", result.Count).
		Time("start_date", start).
		Time("end_date", end).
		Msg("historical rate backfill completed")

	return result, nil
}

// Run executes the live mode for the current day: it plans the day's sample
// times up front, then waits for each one and persists a fresh rate when it
// arrives. Run blocks until the last sample of the day or until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	l := zerolog.Ctx(ctx)

	times := s.SampleTimes(time.Now().UTC(), randompkg.IntBetween(s.cfg.LiveSamplesMin, s.cfg.LiveSamplesMax))

	success := 0

	for _, ts := range times {
		if wait := time.Until(ts); wait > 0 {
			timer := time.NewTimer(wait)

			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}

		sample, err := s.repo.Create(ctx, s.randomRate(), ts)
		if err != nil {
			l.Error().Err(err).Time("sample_at", ts).Msg("failed to persist rate sample")
			continue
		}

		l.Debug().Str("rate", sample.Rate).Time("sample_at", ts).Msg("rate sample persisted")

		success++
	}

	l.Info().Int("count", success).Msg("daily rate generation completed")

	return nil
}
