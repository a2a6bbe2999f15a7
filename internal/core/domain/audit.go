package domain

import "time"

// Audit actions recorded on mutating operations.
const (
	AuditProfileUpdated = "user.profile_updated"
	AuditRoleChanged    = "user.role_changed"
	AuditUserDeleted    = "user.deleted"
	AuditRegistered     = "casting.registered"
)

// AuditEvent is an append-only record of a mutating operation. SubjectID
// identifies the entity acted upon and determines write ordering.
type AuditEvent struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	ActorID   string    `json:"actorId"`
	SubjectID string    `json:"subjectId"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
