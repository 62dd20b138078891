package validationservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/evermed/finvalid/internal/domain"
	"github.com/evermed/finvalid/pkg/randompkg"
)

func pendingRecord(kind domain.Kind) domain.TransactionRecord {
	return domain.TransactionRecord{
		ID:          randompkg.RecordID(),
		Kind:        kind,
		Amount:      randompkg.AmountBetween(1_000, 100_000),
		OccurredOn:  time.Now().UTC().Truncate(24 * time.Hour),
		CreatedAt:   time.Now().UTC().Add(-time.Hour),
		CreatedBy:   randompkg.ActorID(),
		Status:      domain.StatusPending,
		Category:    randompkg.Category(),
		Description: "description",
		Version:     1,
	}
}

func validatedRecord(status domain.Status) domain.TransactionRecord {
	rec := pendingRecord(domain.KindExpense)
	by := randompkg.ActorID()
	at := time.Now().UTC().Add(-30 * time.Minute)
	note := "checked"

	rec.Status = status
	rec.ValidatedBy = &by
	rec.ValidatedAt = &at
	rec.ValidationNote = &note
	rec.Version = 2

	return rec
}

func TestTransition(t *testing.T) {
	staff := domain.Actor{ID: randompkg.ActorID(), Role: domain.RoleStaff}
	admin := domain.Actor{ID: randompkg.ActorID(), Role: domain.RoleAdmin}

	type input struct {
		record domain.TransactionRecord
		action domain.Action
		actor  domain.Actor
		note   string
	}

	testCases := []struct {
		name          string
		input         input
		buildStubs    func(in input, repo *MockRepo, fee *MockFeeTrigger, notifier *MockNotifier)
		checkResponse func(in input, res domain.TransactionRecord, err error)
	}{
		{
			name: "Approve pending",
			input: input{
				record: pendingRecord(domain.KindIncome),
				action: domain.ActionApprove,
				actor:  staff,
				note:   "",
			},
			buildStubs: func(in input, repo *MockRepo, fee *MockFeeTrigger, notifier *MockNotifier) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(in.record.ID)).
					Times(1).
					Return(in.record, nil)

				approved := in.record
				approved.Status = domain.StatusApproved
				approved.ValidatedBy = &in.actor.ID
				approved.Version = 2

				repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, arg domain.ApplyTransitionParams) (domain.TransactionRecord, error) {
						require.Equal(t, in.record.ID, arg.RecordID)
						require.Equal(t, domain.StatusPending, arg.FromStatus)
						require.Equal(t, in.record.Version, arg.FromVersion)
						require.Equal(t, domain.StatusApproved, arg.ToStatus)
						require.NotNil(t, arg.ValidatedBy)
						require.Equal(t, in.actor.ID, *arg.ValidatedBy)
						require.NotNil(t, arg.ValidatedAt)
						require.WithinDuration(t, time.Now().UTC(), *arg.ValidatedAt, time.Minute)
						require.NotNil(t, arg.ValidationNote)

						return approved, nil
					})

				fee.EXPECT().TriggerFeeCalculation(gomock.Any(), gomock.Any()).Times(0)
				notifier.EXPECT().
					NotifyValidationOutcome(gomock.Any(), gomock.Eq(in.record.ID), gomock.Eq(domain.StatusApproved), gomock.Eq(in.actor)).
					Times(1).
					Return(nil)
			},
			checkResponse: func(in input, res domain.TransactionRecord, err error) {
				require.NoError(t, err)
				require.Equal(t, domain.StatusApproved, res.Status)
				require.NotNil(t, res.ValidatedBy)
				require.Equal(t, in.actor.ID, *res.ValidatedBy)
			},
		},
		{
			name: "Reject requires note",
			input: input{
				record: pendingRecord(domain.KindExpense),
				action: domain.ActionReject,
				actor:  staff,
				note:   "",
			},
			buildStubs: func(in input, repo *MockRepo, fee *MockFeeTrigger, notifier *MockNotifier) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(in.record.ID)).
					Times(1).
					Return(in.record, nil)
				repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any()).Times(0)
				notifier.EXPECT().NotifyValidationOutcome(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(in input, res domain.TransactionRecord, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrValidationNoteRequired)
			},
		},
		{
			name: "Approve already approved",
			input: input{
				record: validatedRecord(domain.StatusApproved),
				action: domain.ActionApprove,
				actor:  staff,
				note:   "",
			},
			buildStubs: func(in input, repo *MockRepo, fee *MockFeeTrigger, notifier *MockNotifier) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(in.record.ID)).
					Times(1).
					Return(in.record, nil)
				repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any()).Times(0)
				notifier.EXPECT().NotifyValidationOutcome(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(in input, res domain.TransactionRecord, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrInvalidTransition)
				require.Contains(t, err.Error(), string(domain.StatusApproved))
				require.Contains(t, err.Error(), string(domain.ActionApprove))
			},
		},
		{
			name: "Revert denied for staff",
			input: input{
				record: validatedRecord(domain.StatusApproved),
				action: domain.ActionRevert,
				actor:  staff,
				note:   "entered against the wrong patient",
			},
			buildStubs: func(in input, repo *MockRepo, fee *MockFeeTrigger, notifier *MockNotifier) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(in.record.ID)).
					Times(1).
					Return(in.record, nil)
				repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any()).Times(0)
				notifier.EXPECT().NotifyValidationOutcome(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(in input, res domain.TransactionRecord, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrPermissionDenied)
			},
		},
		{
			name: "Revert by admin clears validator stamp",
			input: input{
				record: validatedRecord(domain.StatusRejected),
				action: domain.ActionRevert,
				actor:  admin,
				note:   "rejection reconsidered",
			},
			buildStubs: func(in input, repo *MockRepo, fee *MockFeeTrigger, notifier *MockNotifier) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(in.record.ID)).
					Times(1).
					Return(in.record, nil)

				reverted := in.record
				reverted.Status = domain.StatusPending
				reverted.ValidatedBy = nil
				reverted.ValidatedAt = nil
				reverted.ValidationNote = nil
				reverted.Version = in.record.Version + 1

				repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, arg domain.ApplyTransitionParams) (domain.TransactionRecord, error) {
						require.Equal(t, domain.StatusPending, arg.ToStatus)
						require.Nil(t, arg.ValidatedBy)
						require.Nil(t, arg.ValidatedAt)
						require.Nil(t, arg.ValidationNote)
						require.Equal(t, in.note, arg.Reason)

						return reverted, nil
					})

				notifier.EXPECT().
					NotifyValidationOutcome(gomock.Any(), gomock.Eq(in.record.ID), gomock.Eq(domain.StatusPending), gomock.Eq(in.actor)).
					Times(1).
					Return(nil)
			},
			checkResponse: func(in input, res domain.TransactionRecord, err error) {
				require.NoError(t, err)
				require.Equal(t, domain.StatusPending, res.Status)
				require.Nil(t, res.ValidatedBy)
				require.Nil(t, res.ValidatedAt)
				require.Nil(t, res.ValidationNote)
			},
		},
		{
			name: "Revert pending is invalid",
			input: input{
				record: pendingRecord(domain.KindIncome),
				action: domain.ActionRevert,
				actor:  admin,
				note:   "noop",
			},
			buildStubs: func(in input, repo *MockRepo, fee *MockFeeTrigger, notifier *MockNotifier) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(in.record.ID)).
					Times(1).
					Return(in.record, nil)
				repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(in input, res domain.TransactionRecord, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrInvalidTransition)
			},
		},
		{
			name: "Concurrent approve loses the race",
			input: input{
				record: pendingRecord(domain.KindIncome),
				action: domain.ActionApprove,
				actor:  staff,
				note:   "",
			},
			buildStubs: func(in input, repo *MockRepo, fee *MockFeeTrigger, notifier *MockNotifier) {
				approvedByOther := validatedRecord(domain.StatusApproved)
				approvedByOther.ID = in.record.ID

				gomock.InOrder(
					repo.EXPECT().Get(gomock.Any(), gomock.Eq(in.record.ID)).
						Times(1).
						Return(in.record, nil),
					repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any()).
						Times(1).
						Return(domain.TransactionRecord{}, domain.ErrTransitionConflict),
					repo.EXPECT().Get(gomock.Any(), gomock.Eq(in.record.ID)).
						Times(1).
						Return(approvedByOther, nil),
				)

				fee.EXPECT().TriggerFeeCalculation(gomock.Any(), gomock.Any()).Times(0)
				notifier.EXPECT().NotifyValidationOutcome(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(in input, res domain.TransactionRecord, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrInvalidTransition)
				require.Contains(t, err.Error(), string(domain.StatusApproved))
			},
		},
		{
			name: "Audit write failure rolls back",
			input: input{
				record: pendingRecord(domain.KindExpense),
				action: domain.ActionReject,
				actor:  staff,
				note:   "missing receipt",
			},
			buildStubs: func(in input, repo *MockRepo, fee *MockFeeTrigger, notifier *MockNotifier) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(in.record.ID)).
					Times(1).
					Return(in.record, nil)
				repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TransactionRecord{}, domain.ErrAuditWriteFailed)
				notifier.EXPECT().NotifyValidationOutcome(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(in input, res domain.TransactionRecord, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrAuditWriteFailed)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			fee := NewMockFeeTrigger(ctrl)
			notifier := NewMockNotifier(ctrl)

			tc.buildStubs(tc.input, repo, fee, notifier)

			service := New(repo, fee, notifier)

			res, err := service.Transition(context.Background(),
				tc.input.record.ID, tc.input.action, tc.input.actor, tc.input.note)

			tc.checkResponse(tc.input, res, err)
		})
	}
}

func TestTransitionFeeTrigger(t *testing.T) {
	staff := domain.Actor{ID: randompkg.ActorID(), Role: domain.RoleStaff}

	procedureID := randompkg.RecordID()
	payout := pendingRecord(domain.KindFeePayout)
	payout.SourceProcedureID = &procedureID

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	fee := NewMockFeeTrigger(ctrl)
	notifier := NewMockNotifier(ctrl)

	approved := payout
	approved.Status = domain.StatusApproved
	approved.ValidatedBy = &staff.ID
	approved.Version = 2

	repo.EXPECT().Get(gomock.Any(), gomock.Eq(payout.ID)).Times(1).Return(payout, nil)
	repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any()).Times(1).Return(approved, nil)

	// The fee collaborator is signaled exactly once per approved payout.
	fee.EXPECT().TriggerFeeCalculation(gomock.Any(), gomock.Eq(procedureID)).Times(1).Return(nil)
	notifier.EXPECT().
		NotifyValidationOutcome(gomock.Any(), gomock.Eq(payout.ID), gomock.Eq(domain.StatusApproved), gomock.Eq(staff)).
		Times(1).
		Return(nil)

	service := New(repo, fee, notifier)

	res, err := service.Transition(context.Background(), payout.ID, domain.ActionApprove, staff, "")
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, res.Status)
}

func TestTransitionNotifierFailureIsNotPropagated(t *testing.T) {
	staff := domain.Actor{ID: randompkg.ActorID(), Role: domain.RoleStaff}
	rec := pendingRecord(domain.KindIncome)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	fee := NewMockFeeTrigger(ctrl)
	notifier := NewMockNotifier(ctrl)

	approved := rec
	approved.Status = domain.StatusApproved
	approved.Version = 2

	repo.EXPECT().Get(gomock.Any(), gomock.Eq(rec.ID)).Times(1).Return(rec, nil)
	repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any()).Times(1).Return(approved, nil)
	notifier.EXPECT().
		NotifyValidationOutcome(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1).
		Return(domain.ErrDataUnavailable)

	service := New(repo, fee, notifier)

	res, err := service.Transition(context.Background(), rec.ID, domain.ActionApprove, staff, "")
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, res.Status)
}
