// Package riskservice manages business logic layer of risk scoring.
//
// A window is scored from three independent heuristics; the result carries
// both the classification and the per-signal breakdown so dashboards can
// explain it. Scoring is pure given the store state; any caching is the
// caller's concern.
package riskservice

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/evermed/finvalid/internal/domain"
)

// Repo provides data access layer interface needed by risk service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package riskservice
type Repo interface {
	CountHighValue(ctx context.Context, from, to time.Time, minAmount int64) (int, error)
	CountDuplicateAmounts(ctx context.Context, day time.Time) (int, error)
	IncomeComplianceCounts(ctx context.Context, from, to time.Time) (complete, total int, err error)
}

// Point boundaries and classification cutoffs. These reproduce the production
// scoring behavior; they are business constants pending product-owner review,
// not derived values.
const (
	highValueCountHigh   = 20
	highValueCountMedium = 10
	highValueCountLow    = 5

	duplicateCountHigh   = 5
	duplicateCountMedium = 2

	complianceRateHigh   = 70
	complianceRateMedium = 85
	complianceRateLow    = 95

	pointsHighLevel   = 6
	pointsMediumLevel = 3
)

// Service facilitates risk scoring logic.
type Service struct {
	repo           Repo
	highValueMinor int64
	now            func() time.Time
}

// New returns risk service struct scoring against the given high-value
// threshold in currency minor units.
func New(repo Repo, highValueMinor int64) *Service {
	return &Service{
		repo:           repo,
		highValueMinor: highValueMinor,
		now:            time.Now,
	}
}

func highValuePoints(count int) int {
	switch {
	case count > highValueCountHigh:
		return 3
	case count > highValueCountMedium:
		return 2
	case count > highValueCountLow:
		return 1
	}

	return 0
}

func duplicatePoints(count int) int {
	switch {
	case count > duplicateCountHigh:
		return 3
	case count > duplicateCountMedium:
		return 2
	case count > 0:
		return 1
	}

	return 0
}

func compliancePoints(rate decimal.Decimal) int {
	switch {
	case rate.LessThan(decimal.NewFromInt(complianceRateHigh)):
		return 3
	case rate.LessThan(decimal.NewFromInt(complianceRateMedium)):
		return 2
	case rate.LessThan(decimal.NewFromInt(complianceRateLow)):
		return 1
	}

	return 0
}

func levelFor(points int) domain.RiskLevel {
	switch {
	case points >= pointsHighLevel:
		return domain.RiskHigh
	case points >= pointsMediumLevel:
		return domain.RiskMedium
	}

	return domain.RiskLow
}

func dataUnavailable(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrDataUnavailable, err)
}

// Score classifies the given window.
//
// The duplicate-amount signal always inspects today's income records and the
// compliance signal always inspects the current month, independently of the
// window; the high-value signal scans the window itself.
func (s *Service) Score(ctx context.Context, window domain.DateWindow) (domain.RiskAssessment, error) {
	l := zerolog.Ctx(ctx)

	assessment := domain.RiskAssessment{Window: window}

	highValueCount, err := s.repo.CountHighValue(ctx, window.From, window.To, s.highValueMinor)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.RiskAssessment{}, dataUnavailable(err)
	}

	now := s.now().UTC()
	today := domain.BusinessDay(now)

	duplicateCount, err := s.repo.CountDuplicateAmounts(ctx, today)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.RiskAssessment{}, dataUnavailable(err)
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	complete, total, err := s.repo.IncomeComplianceCounts(ctx, monthStart, today)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.RiskAssessment{}, dataUnavailable(err)
	}

	// A month with no income records has nothing out of compliance.
	complianceRate := decimal.NewFromInt(100)
	if total > 0 {
		complianceRate = decimal.NewFromInt(int64(complete) * 100).
			Div(decimal.NewFromInt(int64(total)))
	}

	assessment.HighValue = domain.RiskSignal{
		Count:  highValueCount,
		Points: highValuePoints(highValueCount),
	}
	assessment.DuplicateAmounts = domain.RiskSignal{
		Count:  duplicateCount,
		Points: duplicatePoints(duplicateCount),
	}
	assessment.Compliance = domain.ComplianceSignal{
		Rate:   complianceRate,
		Points: compliancePoints(complianceRate),
	}

	assessment.Points = assessment.HighValue.Points +
		assessment.DuplicateAmounts.Points +
		assessment.Compliance.Points
	assessment.Level = levelFor(assessment.Points)

	return assessment, nil
}
