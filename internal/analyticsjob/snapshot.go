// Package analyticsjob keeps a periodically refreshed snapshot of the
// default-window risk assessment so dashboard polling does not hit the
// aggregate queries on every request.
package analyticsjob

import (
	"context"
	"sync"
	"time"

	"github.com/jasonlvhit/gocron"
	"github.com/rs/zerolog"

	"github.com/evermed/finvalid/internal/domain"
)

// Scorer provides the risk scoring interface the snapshot wraps.
//
//go:generate mockgen -source snapshot.go -destination snapshot_mock.go -package analyticsjob
type Scorer interface {
	Score(ctx context.Context, window domain.DateWindow) (domain.RiskAssessment, error)
}

// Snapshot serves a cached assessment of the trailing default window while it
// is fresh and delegates everything else to the wrapped scorer. Concurrent
// refreshes are last-writer-wins.
type Snapshot struct {
	scorer     Scorer
	windowDays int
	maxAge     time.Duration
	logger     zerolog.Logger
	now        func() time.Time

	mu       sync.RWMutex
	cached   domain.RiskAssessment
	cachedAt time.Time
}

// NewSnapshot returns a snapshot wrapping the given scorer. windowDays is the
// trailing window the snapshot precomputes; maxAge is how long a computed
// assessment is served before Score falls through to the scorer again.
func NewSnapshot(scorer Scorer, windowDays int, maxAge time.Duration, logger zerolog.Logger) *Snapshot {
	return &Snapshot{
		scorer:     scorer,
		windowDays: windowDays,
		maxAge:     maxAge,
		logger:     logger,
		now:        time.Now,
	}
}

// Score returns the cached assessment when the requested window is the
// current trailing window and the cache is fresh. A historical window of the
// same span, any other window, or a stale cache is scored directly.
func (s *Snapshot) Score(ctx context.Context, window domain.DateWindow) (domain.RiskAssessment, error) {
	span := window.To.Sub(window.From)
	snapshotSpan := time.Duration(s.windowDays) * 24 * time.Hour

	if span == snapshotSpan && s.isCurrent(window.To) {
		s.mu.RLock()
		cached, cachedAt := s.cached, s.cachedAt
		s.mu.RUnlock()

		if !cachedAt.IsZero() && s.now().Sub(cachedAt) < s.maxAge {
			return cached, nil
		}
	}

	return s.scorer.Score(ctx, window)
}

// isCurrent reports whether a window ending at to is anchored on now rather
// than on some historical point. maxAge is the tolerance: a trailing window
// built any time since the cache could last have been refreshed still counts.
func (s *Snapshot) isCurrent(to time.Time) bool {
	drift := s.now().Sub(to)
	if drift < 0 {
		drift = -drift
	}

	return drift < s.maxAge
}

// Refresh recomputes the snapshot's trailing window and stores the result.
func (s *Snapshot) Refresh(ctx context.Context) error {
	now := s.now()

	assessment, err := s.scorer.Score(ctx, domain.TrailingDays(now, s.windowDays))
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cached = assessment
	s.cachedAt = now
	s.mu.Unlock()

	return nil
}

// Start refreshes the snapshot once, then schedules periodic refreshes every
// interval. It blocks until the scheduler channel closes, so run it in its
// own goroutine.
func (s *Snapshot) Start(interval time.Duration) {
	if err := s.Refresh(context.Background()); err != nil {
		s.logger.Warn().Err(err).Msg("initial risk snapshot refresh failed")
	}

	minutes := uint64(interval / time.Minute)
	if minutes == 0 {
		minutes = 1
	}

	scheduler := gocron.NewScheduler()
	scheduler.Every(minutes).Minutes().Do(s.refresh)

	<-scheduler.Start()
}

func (s *Snapshot) refresh() {
	if err := s.Refresh(context.Background()); err != nil {
		s.logger.Warn().Err(err).Msg("risk snapshot refresh failed")
	}
}
