package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hrsuite/personnel-system/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that writes events to the audit
// repository.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, event ports.AuditEvent) error {
	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}

	s.log.Debug().
		Str("actor", event.Actor).
		Str("action", event.Action).
		Str("outcome", event.Outcome).
		Msg("audit event recorded")

	return nil
}
