package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SettlementAudit records that source entries referenced by a settled
// payment were still present when re-checked. Detection only; nothing
// is cleaned up.
type SettlementAudit struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PaymentID     string             `bson:"payment_id" json:"payment_id"`
	Email         string             `bson:"email" json:"email"`
	Category      string             `bson:"category,omitempty" json:"category,omitempty"`
	SourceIDs     []string           `bson:"source_ids" json:"source_ids"`
	LeftoverCount int64              `bson:"leftover_count" json:"leftover_count"`
	CheckedAt     time.Time          `bson:"checked_at" json:"checked_at"`
}
