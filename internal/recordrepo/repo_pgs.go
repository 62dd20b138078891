// Package recordrepo manages repository layer of transaction records.
package recordrepo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/evermed/finvalid/internal/auditrepo"
	"github.com/evermed/finvalid/internal/domain"
	"github.com/evermed/finvalid/pkg/dbpkg"
	"github.com/evermed/finvalid/pkg/errorspkg"
)

// RepoPGS facilitates transaction record repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns record RepoPGS bound to an open transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns record RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const recordColumns = `
	id, kind, amount, occurred_on, created_at, created_by, status,
	validated_by, validated_at, validation_note,
	category, description, source_procedure_id, version
`

func scanRecord(row interface{ Scan(...interface{}) error }) (domain.TransactionRecord, error) {
	var (
		rec      domain.TransactionRecord
		by, note sql.NullString
		at       sql.NullTime
		procID   sql.NullString
	)

	err := row.Scan(
		&rec.ID,
		&rec.Kind,
		&rec.Amount,
		&rec.OccurredOn,
		&rec.CreatedAt,
		&rec.CreatedBy,
		&rec.Status,
		&by,
		&at,
		&note,
		&rec.Category,
		&rec.Description,
		&procID,
		&rec.Version,
	)
	if err != nil {
		return rec, err
	}

	if by.Valid {
		rec.ValidatedBy = &by.String
	}

	if at.Valid {
		rec.ValidatedAt = &at.Time
	}

	if note.Valid {
		rec.ValidationNote = &note.String
	}

	if procID.Valid {
		rec.SourceProcedureID = &procID.String
	}

	rec.RequiredFieldsComplete = rec.Category != "" && rec.Description != ""

	return rec, nil
}

const createQuery = `
INSERT INTO
    transaction_records (id, kind, amount, occurred_on, created_by, category, description, source_procedure_id)
VALUES
    ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + recordColumns

// Create enters the record in Pending and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateRecordParams) (domain.TransactionRecord, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		uuid.NewString(),
		arg.Kind,
		arg.Amount,
		arg.OccurredOn,
		arg.CreatedBy,
		arg.Category,
		arg.Description,
		arg.SourceProcedureID,
	)

	rec, err := scanRecord(row)
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "transaction_records_amount_check" {
				return rec, domain.ErrNegativeAmount
			}
		}

		return rec, errorspkg.ErrInternal
	}

	return rec, nil
}

const getQuery = `
SELECT ` + recordColumns + `
FROM transaction_records
WHERE id = $1
`

// Get returns the record with the given id.
func (r *RepoPGS) Get(ctx context.Context, id string) (domain.TransactionRecord, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	rec, err := scanRecord(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return rec, domain.ErrRecordNotFound
		}

		return rec, errorspkg.ErrInternal
	}

	return rec, nil
}

const applyTransitionQuery = `
UPDATE transaction_records
SET
	status = $1,
	validated_by = $2,
	validated_at = $3,
	validation_note = $4,
	version = version + 1
WHERE id = $5 AND status = $6 AND version = $7
RETURNING ` + recordColumns

// ApplyTransition mutates the record's status and appends the paired audit
// entry within a single transaction.
//
// The update is guarded by the status and version the caller read; losing a
// race returns domain.ErrTransitionConflict with no observable change. A
// failed audit append rolls the mutation back and returns
// domain.ErrAuditWriteFailed.
func (r *RepoPGS) ApplyTransition(ctx context.Context, arg domain.ApplyTransitionParams) (domain.TransactionRecord, error) {
	l := zerolog.Ctx(ctx)

	var rec domain.TransactionRecord

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return rec, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	row := tx.QueryRowContext(ctx, applyTransitionQuery,
		arg.ToStatus,
		arg.ValidatedBy,
		arg.ValidatedAt,
		arg.ValidationNote,
		arg.RecordID,
		arg.FromStatus,
		arg.FromVersion,
	)

	rec, err = scanRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return rec, domain.ErrTransitionConflict
		}

		l.Error().Err(err).Msgf("ApplyTransition(ctx, %+v)", arg)

		return rec, errorspkg.ErrInternal
	}

	auditRepo := auditrepo.NewRepoPGS(tx)

	_, err = auditRepo.Append(ctx, domain.AuditEntry{
		RecordID:   arg.RecordID,
		FromStatus: arg.FromStatus,
		ToStatus:   arg.ToStatus,
		Actor:      arg.Actor,
		Reason:     arg.Reason,
	})
	if err != nil {
		l.Error().Err(err).Send()
		return domain.TransactionRecord{}, domain.ErrAuditWriteFailed
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return domain.TransactionRecord{}, domain.ErrAuditWriteFailed
	}

	return rec, nil
}
