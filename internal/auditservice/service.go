// Package auditservice manages business logic layer of audit history reads.
package auditservice

import (
	"context"

	"github.com/evermed/finvalid/internal/domain"
)

// Repo provides data access layer interface needed by audit service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package auditservice
type Repo interface {
	List(ctx context.Context, recordID string) ([]domain.AuditEntry, error)
}

// Service facilitates audit history logic.
type Service struct {
	repo Repo
}

// New returns audit service struct to serve compliance history reads.
func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// History returns the ordered transition history for the given record,
// oldest first, so reviewers can reconstruct who approved it and when.
func (s *Service) History(ctx context.Context, recordID string) ([]domain.AuditEntry, error) {
	entries, err := s.repo.List(ctx, recordID)
	if err != nil {
		return nil, err
	}

	return entries, nil
}
