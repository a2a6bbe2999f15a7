package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/starcast/casting-api/internal/core/domain"
)

const auditCollection = "audit_events"

// MongoAuditRepository is the insert-only store behind the audit trail.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEvent struct {
	ID        string    `bson:"_id"`
	Action    string    `bson:"action"`
	ActorID   string    `bson:"actor_id"`
	SubjectID string    `bson:"subject_id"`
	Detail    string    `bson:"detail,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, mongoAuditEvent{
		ID:        event.ID,
		Action:    event.Action,
		ActorID:   event.ActorID,
		SubjectID: event.SubjectID,
		Detail:    event.Detail,
		CreatedAt: event.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
