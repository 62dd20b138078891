package test

import (
	"time"

	"github.com/evermed/finvalid/internal/domain"
	"github.com/evermed/finvalid/pkg/randompkg"
)

// RandomRecord returns a random pending transaction record created by the
// given staff member.
func RandomRecord(createdBy string) domain.TransactionRecord {
	return domain.TransactionRecord{
		ID:                     randompkg.RecordID(),
		Kind:                   randompkg.Kind(),
		Amount:                 randompkg.AmountBetween(1000, 10_000_000),
		OccurredOn:             time.Now().Truncate(24 * time.Hour).UTC(),
		CreatedAt:              time.Now().Truncate(time.Second).UTC(),
		CreatedBy:              createdBy,
		Status:                 domain.StatusPending,
		Category:               randompkg.Category(),
		Description:            randompkg.String(20),
		RequiredFieldsComplete: true,
		Version:                1,
	}
}

// RandomAuditEntry returns a random audit entry for the given record.
func RandomAuditEntry(recordID string, id int64) domain.AuditEntry {
	return domain.AuditEntry{
		ID:         id,
		RecordID:   recordID,
		FromStatus: domain.StatusPending,
		ToStatus:   domain.StatusApproved,
		Actor:      randompkg.ActorID(),
		Reason:     randompkg.String(12),
		CreatedAt:  time.Now().Truncate(time.Second).UTC(),
	}
}
