package ports

import (
	"context"
	"time"
)

// AuditEvent is a security-relevant occurrence worth keeping a trail of:
// logins, token rejections, role mutations.
type AuditEvent struct {
	Actor   string    `json:"actor"`
	Action  string    `json:"action"`
	Target  string    `json:"target,omitempty"`
	Outcome string    `json:"outcome"`
	At      time.Time `json:"at"`
}

// AuditService persists audit events.
type AuditService interface {
	Record(ctx context.Context, event AuditEvent) error
}

// AuditRepository is the persistence port behind AuditService.
type AuditRepository interface {
	Insert(ctx context.Context, event AuditEvent) error
}
