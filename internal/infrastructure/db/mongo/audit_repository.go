package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hrsuite/personnel-system/internal/core/ports"
)

const auditCollection = "audit_events"

type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEvent struct {
	Actor   string `bson:"actor"`
	Action  string `bson:"action"`
	Target  string `bson:"target,omitempty"`
	Outcome string `bson:"outcome"`
	At      int64  `bson:"at"`
}

func (r *AuditRepository) Insert(ctx context.Context, event ports.AuditEvent) error {
	doc := mongoAuditEvent{
		Actor:   event.Actor,
		Action:  event.Action,
		Target:  event.Target,
		Outcome: event.Outcome,
		At:      event.At.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
