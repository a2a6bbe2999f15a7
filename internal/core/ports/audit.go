package ports

import (
	"context"

	"github.com/starcast/casting-api/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditRecorder accepts audit events for asynchronous persistence.
// Recording must never block or fail a caller's request.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}
