package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrDataUnavailable indicates that a read-only aggregation could not reach
// the store; callers render a degraded state instead of a fabricated zero.
var ErrDataUnavailable = errors.New("data unavailable")

// ErrBulkRevertNotAllowed indicates a revert requested through the bulk
// coordinator; reverts are single-record operations.
var ErrBulkRevertNotAllowed = errors.New("bulk revert not allowed")

// DateWindow is a bounded date range used for scoring and metrics.
type DateWindow struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// TrailingDays returns the window covering the trailing number of days up to now.
func TrailingDays(now time.Time, days int) DateWindow {
	return DateWindow{From: now.AddDate(0, 0, -days), To: now}
}

// BusinessDay truncates a timestamp to the UTC date it falls on. Day-keyed
// aggregates compare against a date column, so anything below midnight
// precision matches no rows.
func BusinessDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RiskLevel is a coarse classification of a scored window.
type RiskLevel string

// Risk levels.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskSignal is one scored heuristic: its raw observation and the points it
// contributed.
type RiskSignal struct {
	Count  int `json:"count"`
	Points int `json:"points"`
}

// ComplianceSignal is the required-fields compliance heuristic: the observed
// completion rate in percent and the points it contributed.
type ComplianceSignal struct {
	Rate   decimal.Decimal `json:"rate"`
	Points int             `json:"points"`
}

// RiskAssessment is the result of scoring a window: the classification plus
// the per-signal breakdown that lets dashboards explain it.
type RiskAssessment struct {
	Level            RiskLevel        `json:"level"`
	Points           int              `json:"points"`
	HighValue        RiskSignal       `json:"high_value"`
	DuplicateAmounts RiskSignal       `json:"duplicate_amounts"`
	Compliance       ComplianceSignal `json:"compliance"`
	Window           DateWindow       `json:"window"`
}

// TrendDelta is the signed difference and percentage change between two
// non-overlapping windows of the same metric.
type TrendDelta struct {
	Current       decimal.Decimal `json:"current"`
	Previous      decimal.Decimal `json:"previous"`
	Diff          decimal.Decimal `json:"diff"`
	PercentChange decimal.Decimal `json:"percent_change"`
}

// BulkFailure is one failed record of a bulk transition.
type BulkFailure struct {
	RecordID string `json:"record_id"`
	Err      error  `json:"-"`
	Reason   string `json:"reason"`
}

// BulkResult reports a bulk transition per record. Results are independent;
// order carries no meaning.
type BulkResult struct {
	Succeeded []string      `json:"succeeded"`
	Failed    []BulkFailure `json:"failed"`
}
