package recordrepo

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/evermed/finvalid/internal/domain"
	"github.com/evermed/finvalid/pkg/errorspkg"
)

// Windowed aggregation queries backing the risk and efficiency engines.
// All of them are read-only and bounded by the caller's context deadline.

const countHighValueQuery = `
SELECT COUNT(*)
FROM transaction_records
WHERE kind IN ($1, $2)
  AND amount > $3
  AND occurred_on BETWEEN $4 AND $5
`

// CountHighValue returns the number of income and expense records in the
// window above the given amount. Zero-amount records never match because the
// threshold is positive.
func (r *RepoPGS) CountHighValue(ctx context.Context, from, to time.Time, minAmount int64) (int, error) {
	l := zerolog.Ctx(ctx)

	var count int

	row := r.db.QueryRowContext(ctx, countHighValueQuery,
		domain.KindIncome, domain.KindExpense, minAmount, from, to)

	if err := row.Scan(&count); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}

const countDuplicateAmountsQuery = `
SELECT COUNT(*)
FROM (
	SELECT amount
	FROM transaction_records
	WHERE kind = $1 AND occurred_on = $2
	GROUP BY amount
	HAVING COUNT(*) > 3
) clustered
`

// CountDuplicateAmounts returns the number of distinct amounts appearing more
// than three times among income records on the given day.
func (r *RepoPGS) CountDuplicateAmounts(ctx context.Context, day time.Time) (int, error) {
	l := zerolog.Ctx(ctx)

	var count int

	row := r.db.QueryRowContext(ctx, countDuplicateAmountsQuery, domain.KindIncome, day)

	if err := row.Scan(&count); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}

const incomeComplianceQuery = `
SELECT
	COUNT(*) FILTER (WHERE category <> '' AND description <> ''),
	COUNT(*)
FROM transaction_records
WHERE kind = $1 AND occurred_on BETWEEN $2 AND $3
`

// IncomeComplianceCounts returns how many income records in the window have
// their required fields complete, alongside the total.
func (r *RepoPGS) IncomeComplianceCounts(ctx context.Context, from, to time.Time) (complete, total int, err error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, incomeComplianceQuery, domain.KindIncome, from, to)

	if err := row.Scan(&complete, &total); err != nil {
		l.Error().Err(err).Send()
		return 0, 0, errorspkg.ErrInternal
	}

	return complete, total, nil
}

const validationOutcomeQuery = `
SELECT
	COUNT(*) FILTER (WHERE status = $1),
	COUNT(*) FILTER (WHERE status = $2)
FROM transaction_records
WHERE validated_at BETWEEN $3 AND $4
`

// ValidationOutcomeCounts returns how many records were approved and rejected
// inside the window. Records never validated carry no validated_at and are
// excluded by the range predicate.
func (r *RepoPGS) ValidationOutcomeCounts(ctx context.Context, from, to time.Time) (approved, rejected int, err error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, validationOutcomeQuery,
		domain.StatusApproved, domain.StatusRejected, from, to)

	if err := row.Scan(&approved, &rejected); err != nil {
		l.Error().Err(err).Send()
		return 0, 0, errorspkg.ErrInternal
	}

	return approved, rejected, nil
}

const processingHoursQuery = `
SELECT
	COALESCE(AVG(EXTRACT(EPOCH FROM (validated_at - created_at)) / 3600), 0),
	COUNT(*)
FROM transaction_records
WHERE validated_at BETWEEN $1 AND $2
`

// AvgProcessingHours returns the mean hours between entry and validation for
// records validated inside the window, with the number of records averaged.
func (r *RepoPGS) AvgProcessingHours(ctx context.Context, from, to time.Time) (hours float64, count int, err error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, processingHoursQuery, from, to)

	if err := row.Scan(&hours, &count); err != nil {
		l.Error().Err(err).Send()
		return 0, 0, errorspkg.ErrInternal
	}

	return hours, count, nil
}

const dayCompletionQuery = `
SELECT
	COUNT(*),
	COUNT(*) FILTER (WHERE status = $1)
FROM transaction_records
WHERE occurred_on = $2
`

// DayCompletionCounts returns the total and still-pending record counts
// attributed to the given business day.
func (r *RepoPGS) DayCompletionCounts(ctx context.Context, day time.Time) (total, pending int, err error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, dayCompletionQuery, domain.StatusPending, day)

	if err := row.Scan(&total, &pending); err != nil {
		l.Error().Err(err).Send()
		return 0, 0, errorspkg.ErrInternal
	}

	return total, pending, nil
}

const pendingCountQuery = `
SELECT COUNT(*)
FROM transaction_records
WHERE status = $1 AND occurred_on = $2
`

// PendingCountOn returns the number of records still pending for the given
// business day.
func (r *RepoPGS) PendingCountOn(ctx context.Context, day time.Time) (int, error) {
	l := zerolog.Ctx(ctx)

	var count int

	row := r.db.QueryRowContext(ctx, pendingCountQuery, domain.StatusPending, day)

	if err := row.Scan(&count); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}

const netCashFlowQuery = `
SELECT COALESCE(SUM(CASE WHEN kind = $1 THEN amount ELSE -amount END), 0)
FROM transaction_records
WHERE status = $2 AND occurred_on BETWEEN $3 AND $4
`

// NetCashFlow returns approved income minus approved outgoings, in minor
// units, attributed to the window. Only approved records count toward cash
// flow.
func (r *RepoPGS) NetCashFlow(ctx context.Context, from, to time.Time) (int64, error) {
	l := zerolog.Ctx(ctx)

	var net int64

	row := r.db.QueryRowContext(ctx, netCashFlowQuery,
		domain.KindIncome, domain.StatusApproved, from, to)

	if err := row.Scan(&net); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return net, nil
}
