// Package schedulepkg runs periodic background jobs.
//
// The scheduler is an explicit process-wide component: constructed once at
// startup, started with a context and stopped on shutdown. Jobs block on
// store I/O without touching the request-handling path, and their failures
// are logged rather than propagated into the scheduling loop.
package schedulepkg

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Job is one periodic task, triggered daily at HourUTC.
type Job struct {
	Name    string
	HourUTC int
	Run     func(ctx context.Context) error
}

// Scheduler triggers registered jobs once per day each.
type Scheduler struct {
	logger zerolog.Logger
	jobs   []Job

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New returns a scheduler that logs through the given logger.
func New(logger zerolog.Logger) *Scheduler {
	return &Scheduler{logger: logger}
}

// Add registers a job. Must be called before Start.
func (s *Scheduler) Add(job Job) {
	s.jobs = append(s.jobs, job)
}

// Start launches one goroutine per registered job. Calling Start twice is an
// error in the caller; the second call is ignored.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)

	for _, job := range s.jobs {
		job := job

		s.wg.Add(1)

		go func() {
			defer s.wg.Done()
			s.loop(ctx, job)
		}()
	}

	s.logger.Info().Int("jobs", len(s.jobs)).Msg("scheduler started")
}

// Stop cancels all job loops and waits for them to return. A job mid-run
// finishes or rolls back through its own unit of work; Stop only prevents
// further runs.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	s.wg.Wait()

	s.logger.Info().Msg("scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	logger := s.logger.With().Str("job", job.Name).Logger()

	for {
		next := NextRun(time.Now().UTC(), job.HourUTC)
		timer := time.NewTimer(time.Until(next))

		logger.Info().Time("next_run", next).Msg("job scheduled")

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		s.runJob(logger.WithContext(ctx), job, logger)
	}
}

// runJob shields the scheduling loop from job errors and panics.
func (s *Scheduler) runJob(ctx context.Context, job Job, logger zerolog.Logger) {
	defer func() {
		if panicVal := recover(); panicVal != nil {
			logger.Error().Msgf("job panic: %v", panicVal)
		}
	}()

	started := time.Now()

	if err := job.Run(ctx); err != nil {
		logger.Error().Err(err).Str("duration", time.Since(started).String()).Msg("job failed")
		return
	}

	logger.Info().Str("duration", time.Since(started).String()).Msg("job finished")
}

// NextRun returns the next daily trigger at hourUTC strictly after now.
func NextRun(now time.Time, hourUTC int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hourUTC, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}
