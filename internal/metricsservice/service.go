// Package metricsservice manages business logic layer of validation
// efficiency metrics.
//
// Every operation is a pure function of the store and a time window. Each
// dashboard reads these metrics instead of re-deriving its own formulas, so
// edge cases like division by zero are handled in exactly one place.
package metricsservice

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/evermed/finvalid/internal/domain"
)

// Repo provides data access layer interface needed by metrics service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package metricsservice
type Repo interface {
	ValidationOutcomeCounts(ctx context.Context, from, to time.Time) (approved, rejected int, err error)
	AvgProcessingHours(ctx context.Context, from, to time.Time) (hours float64, count int, err error)
	DayCompletionCounts(ctx context.Context, day time.Time) (total, pending int, err error)
	PendingCountOn(ctx context.Context, day time.Time) (int, error)
	NetCashFlow(ctx context.Context, from, to time.Time) (int64, error)
}

// Default trailing windows of the efficiency metrics.
const (
	ApprovalRateDays    = 30
	ProcessingHoursDays = 7
	cashFlowTrendDays   = 7
)

var hundred = decimal.NewFromInt(100)

// Service facilitates efficiency metrics logic.
type Service struct {
	repo          Repo
	fallbackHours int64
	now           func() time.Time
}

// New returns metrics service struct. The fallback is reported, flagged as an
// estimate, when no record was validated inside the processing-hours window.
func New(repo Repo, fallbackHours int64) *Service {
	return &Service{
		repo:          repo,
		fallbackHours: fallbackHours,
		now:           time.Now,
	}
}

func dataUnavailable(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrDataUnavailable, err)
}

// ApprovalRate returns approved over approved-plus-rejected for the trailing
// window, as a ratio in [0, 1]. Records never validated do not enter the
// denominator. A window with no validated records yields 0.
func (s *Service) ApprovalRate(ctx context.Context, days int) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	window := domain.TrailingDays(s.now().UTC(), days)

	approved, rejected, err := s.repo.ValidationOutcomeCounts(ctx, window.From, window.To)
	if err != nil {
		l.Error().Err(err).Send()
		return decimal.Zero, dataUnavailable(err)
	}

	if approved+rejected == 0 {
		return decimal.Zero, nil
	}

	return decimal.NewFromInt(int64(approved)).
		Div(decimal.NewFromInt(int64(approved + rejected))), nil
}

// AverageProcessingHours returns the mean hours between entry and validation
// over records validated in the trailing window. With no data it returns the
// configured fallback and estimated=true so dashboards can flag the value
// instead of reporting instant processing.
func (s *Service) AverageProcessingHours(ctx context.Context, days int) (hours decimal.Decimal, estimated bool, err error) {
	l := zerolog.Ctx(ctx)

	window := domain.TrailingDays(s.now().UTC(), days)

	avg, count, err := s.repo.AvgProcessingHours(ctx, window.From, window.To)
	if err != nil {
		l.Error().Err(err).Send()
		return decimal.Zero, false, dataUnavailable(err)
	}

	if count == 0 {
		return decimal.NewFromInt(s.fallbackHours), true, nil
	}

	return decimal.NewFromFloat(avg), false, nil
}

// DailyCompletionRate returns the percentage of the day's records no longer
// pending. day may be any timestamp within the business day; it is truncated
// to its UTC date here so the store always sees a date-precision value. A day
// with no records is vacuously 100% complete.
func (s *Service) DailyCompletionRate(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	total, pending, err := s.repo.DayCompletionCounts(ctx, domain.BusinessDay(day))
	if err != nil {
		l.Error().Err(err).Send()
		return decimal.Zero, dataUnavailable(err)
	}

	if total == 0 {
		return hundred, nil
	}

	return decimal.NewFromInt(int64(total - pending)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(total))), nil
}

// TrendDelta returns the signed difference and percentage change between two
// non-overlapping windows of the same metric.
//
// The percentage convention is fixed here for every dashboard: growth from
// zero is 100%, no movement on zero is 0%.
func TrendDelta(current, previous decimal.Decimal) domain.TrendDelta {
	delta := domain.TrendDelta{
		Current:  current,
		Previous: previous,
		Diff:     current.Sub(previous),
	}

	switch {
	case previous.IsZero() && current.IsPositive():
		delta.PercentChange = hundred
	case previous.IsZero():
		delta.PercentChange = decimal.Zero
	default:
		delta.PercentChange = current.Sub(previous).Div(previous).Mul(hundred)
	}

	return delta
}

// PendingCountTrend compares today's pending count against yesterday's.
func (s *Service) PendingCountTrend(ctx context.Context) (domain.TrendDelta, error) {
	l := zerolog.Ctx(ctx)

	today := domain.BusinessDay(s.now())
	yesterday := today.AddDate(0, 0, -1)

	current, err := s.repo.PendingCountOn(ctx, today)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.TrendDelta{}, dataUnavailable(err)
	}

	previous, err := s.repo.PendingCountOn(ctx, yesterday)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.TrendDelta{}, dataUnavailable(err)
	}

	return TrendDelta(decimal.NewFromInt(int64(current)), decimal.NewFromInt(int64(previous))), nil
}

// NetCashFlowTrend compares the trailing week's approved net cash flow
// against the week before it.
func (s *Service) NetCashFlowTrend(ctx context.Context) (domain.TrendDelta, error) {
	l := zerolog.Ctx(ctx)

	now := s.now().UTC()
	weekAgo := now.AddDate(0, 0, -cashFlowTrendDays)
	twoWeeksAgo := now.AddDate(0, 0, -2*cashFlowTrendDays)

	current, err := s.repo.NetCashFlow(ctx, weekAgo, now)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.TrendDelta{}, dataUnavailable(err)
	}

	previous, err := s.repo.NetCashFlow(ctx, twoWeeksAgo, weekAgo)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.TrendDelta{}, dataUnavailable(err)
	}

	return TrendDelta(decimal.NewFromInt(current), decimal.NewFromInt(previous)), nil
}
