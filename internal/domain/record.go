// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrRecordNotFound indicates that the transaction record is not found.
	ErrRecordNotFound = errors.New("transaction record not found")
	// ErrInvalidTransition indicates that the requested action is not legal from the record's current status.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrPermissionDenied indicates that the actor lacks the capability required by the action.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrValidationNoteRequired indicates a Reject, RequestRevision or Revert without a note.
	ErrValidationNoteRequired = errors.New("validation note required")
	// ErrTransitionConflict indicates that a concurrent transition won the version check.
	ErrTransitionConflict = errors.New("transition conflict")
	// ErrAuditWriteFailed indicates that the audit entry could not be persisted and the transition was rolled back.
	ErrAuditWriteFailed = errors.New("audit write failed")
	// ErrNegativeAmount indicates negative amount.
	ErrNegativeAmount = errors.New("negative amount")
)

// Kind discriminates the concrete transaction record kinds.
type Kind string

// Transaction record kinds.
const (
	KindIncome    Kind = "income"
	KindExpense   Kind = "expense"
	KindFeePayout Kind = "fee_payout"
)

// Status is the approval state of a transaction record.
type Status string

// Approval statuses. Pending is the initial status; Approved and Rejected
// terminate the normal flow; NeedsRevision is a soft non-terminal status.
const (
	StatusPending       Status = "pending"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
	StatusNeedsRevision Status = "needs_revision"
)

// Action is a requested transition on a transaction record.
type Action string

// Transition actions.
const (
	ActionApprove         Action = "approve"
	ActionReject          Action = "reject"
	ActionRequestRevision Action = "request_revision"
	ActionRevert          Action = "revert"
)

// TransactionRecord holds a money-bearing entry subject to validation.
//
// Amount is stored in integer minor units. The validator stamp fields
// (ValidatedBy, ValidatedAt, ValidationNote) are nil together while the
// record is pending and set together once it is validated; a revert clears
// all three atomically.
type TransactionRecord struct {
	ID                     string     `json:"id"`
	Kind                   Kind       `json:"kind"`
	Amount                 int64      `json:"amount"`
	OccurredOn             time.Time  `json:"occurred_on"`
	CreatedAt              time.Time  `json:"created_at"`
	CreatedBy              string     `json:"created_by"`
	Status                 Status     `json:"status"`
	ValidatedBy            *string    `json:"validated_by,omitempty"`
	ValidatedAt            *time.Time `json:"validated_at,omitempty"`
	ValidationNote         *string    `json:"validation_note,omitempty"`
	Category               string     `json:"category"`
	Description            string     `json:"description"`
	SourceProcedureID      *string    `json:"source_procedure_id,omitempty"`
	RequiredFieldsComplete bool       `json:"required_fields_complete"`
	Version                int64      `json:"-"`
}

// CreateRecordParams is the input data for entering a new transaction record.
// Records always enter in Pending.
type CreateRecordParams struct {
	Kind              Kind      `json:"kind"`
	Amount            int64     `json:"amount"`
	OccurredOn        time.Time `json:"occurred_on"`
	CreatedBy         string    `json:"created_by"`
	Category          string    `json:"category"`
	Description       string    `json:"description"`
	SourceProcedureID *string   `json:"source_procedure_id,omitempty"`
}

// ApplyTransitionParams is the input data for an atomic status mutation
// paired with its audit entry.
//
// FromStatus and FromVersion guard the update: the mutation succeeds only if
// the stored record still matches both, so exactly one of two racing
// transitions can win.
type ApplyTransitionParams struct {
	RecordID       string
	FromStatus     Status
	FromVersion    int64
	ToStatus       Status
	ValidatedBy    *string
	ValidatedAt    *time.Time
	ValidationNote *string
	Actor          string
	Reason         string
}
