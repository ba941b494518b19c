package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityLog is one entry of the human-readable audit trail. Appends are
// best-effort: a failed write must never fail the operation that produced it.
type ActivityLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Action      string             `bson:"action" json:"action"`
	ReferenceID string             `bson:"reference_id" json:"referenceId"`
	Details     string             `bson:"details" json:"details"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}
