// Package auditrepo manages the append-only repository layer of audit entries.
//
// The package exposes no update or delete operation; the log can only grow.
package auditrepo

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/evermed/finvalid/internal/domain"
	"github.com/evermed/finvalid/pkg/dbpkg"
	"github.com/evermed/finvalid/pkg/errorspkg"
)

// RepoPGS facilitates audit entry repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns audit RepoPGS. It accepts either a connection or an open
// transaction so appends can join a record mutation atomically.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const appendQuery = `
INSERT INTO
    audit_entries (record_id, from_status, to_status, actor, reason)
VALUES
    ($1, $2, $3, $4, $5)
RETURNING id, record_id, from_status, to_status, actor, reason, created_at
`

// Append persists the audit entry and then returns it.
func (r *RepoPGS) Append(ctx context.Context, entry domain.AuditEntry) (domain.AuditEntry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, appendQuery,
		entry.RecordID,
		entry.FromStatus,
		entry.ToStatus,
		entry.Actor,
		entry.Reason,
	)

	var e domain.AuditEntry

	err := row.Scan(
		&e.ID,
		&e.RecordID,
		&e.FromStatus,
		&e.ToStatus,
		&e.Actor,
		&e.Reason,
		&e.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()
		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const listQuery = `
SELECT
	id, record_id, from_status, to_status, actor, reason, created_at
FROM audit_entries
WHERE record_id = $1
ORDER BY id
`

// List returns the recorded transitions for the given record, oldest first.
func (r *RepoPGS) List(ctx context.Context, recordID string) ([]domain.AuditEntry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, recordID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.AuditEntry{}

	for rows.Next() {
		var e domain.AuditEntry
		if err := rows.Scan(
			&e.ID,
			&e.RecordID,
			&e.FromStatus,
			&e.ToStatus,
			&e.Actor,
			&e.Reason,
			&e.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
