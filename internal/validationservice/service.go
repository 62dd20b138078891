// Package validationservice manages business logic layer of transaction
// record validation: the approval state machine, its audit stamping and its
// downstream signals.
package validationservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/evermed/finvalid/internal/domain"
)

// Repo provides data access layer interface needed by validation service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package validationservice
type Repo interface {
	Get(ctx context.Context, id string) (domain.TransactionRecord, error)
	ApplyTransition(ctx context.Context, arg domain.ApplyTransitionParams) (domain.TransactionRecord, error)
}

// FeeTrigger is the external fee-calculation collaborator signaled when a
// procedure-driven payout is approved. The core never computes fee amounts.
type FeeTrigger interface {
	TriggerFeeCalculation(ctx context.Context, procedureID string) error
}

// Notifier is the external dispatcher of validation outcome events.
type Notifier interface {
	NotifyValidationOutcome(ctx context.Context, recordID string, newStatus domain.Status, actor domain.Actor) error
}

// Service facilitates validation service layer logic.
type Service struct {
	repo       Repo
	feeTrigger FeeTrigger
	notifier   Notifier
	now        func() time.Time
}

// New returns validation service struct to manage the approval state machine.
func New(repo Repo, feeTrigger FeeTrigger, notifier Notifier) *Service {
	return &Service{
		repo:       repo,
		feeTrigger: feeTrigger,
		notifier:   notifier,
		now:        time.Now,
	}
}

func invalidTransition(status domain.Status, action domain.Action) error {
	return fmt.Errorf("%w: cannot %s a record in status %s", domain.ErrInvalidTransition, action, status)
}

// transitionParams decides the legality of the requested action from the
// record's current state and, if legal, builds the guarded mutation.
func transitionParams(rec domain.TransactionRecord, action domain.Action, actor domain.Actor, note string, now time.Time) (domain.ApplyTransitionParams, error) {
	arg := domain.ApplyTransitionParams{
		RecordID:    rec.ID,
		FromStatus:  rec.Status,
		FromVersion: rec.Version,
		Actor:       actor.ID,
		Reason:      note,
	}

	switch action {
	case domain.ActionApprove, domain.ActionReject, domain.ActionRequestRevision:
		if rec.Status != domain.StatusPending {
			return arg, invalidTransition(rec.Status, action)
		}

		if action != domain.ActionApprove && note == "" {
			return arg, domain.ErrValidationNoteRequired
		}

		switch action {
		case domain.ActionApprove:
			arg.ToStatus = domain.StatusApproved
		case domain.ActionReject:
			arg.ToStatus = domain.StatusRejected
		default:
			arg.ToStatus = domain.StatusNeedsRevision
		}

		arg.ValidatedBy = &actor.ID
		arg.ValidatedAt = &now
		arg.ValidationNote = &note

		return arg, nil

	case domain.ActionRevert:
		if rec.Status == domain.StatusPending {
			return arg, invalidTransition(rec.Status, action)
		}

		if !actor.IsAdmin() {
			return arg, domain.ErrPermissionDenied
		}

		if note == "" {
			return arg, domain.ErrValidationNoteRequired
		}

		// The validator stamp is cleared as a whole; the reason lives in
		// the audit entry only.
		arg.ToStatus = domain.StatusPending

		return arg, nil
	}

	return arg, invalidTransition(rec.Status, action)
}

// Transition moves the record through the approval state machine.
//
// On success the record carries its new status and validator stamp and
// exactly one audit entry has been appended. On any error the record is
// unchanged.
func (s *Service) Transition(ctx context.Context, recordID string, action domain.Action, actor domain.Actor, note string) (domain.TransactionRecord, error) {
	l := zerolog.Ctx(ctx)

	rec, err := s.repo.Get(ctx, recordID)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.TransactionRecord{}, err
	}

	arg, err := transitionParams(rec, action, actor, note, s.now().UTC())
	if err != nil {
		l.Info().Err(err).Send()
		return domain.TransactionRecord{}, err
	}

	updated, err := s.repo.ApplyTransition(ctx, arg)
	if err != nil {
		if errors.Is(err, domain.ErrTransitionConflict) {
			// A concurrent transition won the version check; report the
			// status the record actually has now.
			current, gerr := s.repo.Get(ctx, recordID)
			if gerr != nil {
				l.Error().Err(gerr).Send()
				return domain.TransactionRecord{}, gerr
			}

			return domain.TransactionRecord{}, invalidTransition(current.Status, action)
		}

		l.Error().Err(err).Send()

		return domain.TransactionRecord{}, err
	}

	// The optimistic guard admits exactly one Pending->Approved transition
	// per record, so the trigger cannot fire twice for the same payout.
	if action == domain.ActionApprove && updated.Kind == domain.KindFeePayout && updated.SourceProcedureID != nil {
		if err := s.feeTrigger.TriggerFeeCalculation(ctx, *updated.SourceProcedureID); err != nil {
			l.Error().Err(err).Str("record_id", updated.ID).Msg("fee calculation trigger failed")
		}
	}

	if err := s.notifier.NotifyValidationOutcome(ctx, updated.ID, updated.Status, actor); err != nil {
		l.Warn().Err(err).Str("record_id", updated.ID).Msg("outcome notification failed")
	}

	return updated, nil
}
