// Package bulkservice manages business logic layer of bulk transitions.
//
// Records are processed independently: one record's failure never aborts the
// rest and nothing is retried. Callers surface the aggregate report.
package bulkservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/evermed/finvalid/internal/domain"
)

// Transitioner provides the single-record transition interface needed by the
// bulk coordinator.
//
//go:generate mockgen -source service.go -destination service_mock.go -package bulkservice
type Transitioner interface {
	Transition(ctx context.Context, recordID string, action domain.Action, actor domain.Actor, note string) (domain.TransactionRecord, error)
}

// Service facilitates bulk transition logic.
type Service struct {
	transitioner Transitioner
}

// New returns bulk service struct to coordinate multi-record transitions.
func New(t Transitioner) *Service {
	return &Service{transitioner: t}
}

// TransitionMany applies the action to every record and reports per-record
// outcomes. Reverts are excluded wholesale: they are rare, single-record and
// need an explicit reason each.
func (s *Service) TransitionMany(ctx context.Context, recordIDs []string, action domain.Action, actor domain.Actor, note string) (domain.BulkResult, error) {
	l := zerolog.Ctx(ctx)

	if action == domain.ActionRevert {
		l.Info().Err(domain.ErrBulkRevertNotAllowed).Send()
		return domain.BulkResult{}, domain.ErrBulkRevertNotAllowed
	}

	result := domain.BulkResult{
		Succeeded: []string{},
		Failed:    []domain.BulkFailure{},
	}

	for _, id := range recordIDs {
		if _, err := s.transitioner.Transition(ctx, id, action, actor, note); err != nil {
			result.Failed = append(result.Failed, domain.BulkFailure{
				RecordID: id,
				Err:      err,
				Reason:   err.Error(),
			})

			continue
		}

		result.Succeeded = append(result.Succeeded, id)
	}

	l.Info().
		Str("action", string(action)).
		Int("succeeded", len(result.Succeeded)).
		Int("failed", len(result.Failed)).
		Msg("bulk transition finished")

	return result, nil
}
