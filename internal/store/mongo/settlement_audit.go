package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SettlementAuditRepository struct {
	collection *mongo.Collection
}

func NewSettlementAuditRepository(db *mongo.Database) *SettlementAuditRepository {
	return &SettlementAuditRepository{
		collection: db.Collection("settlement_audit"),
	}
}

func (r *SettlementAuditRepository) Create(ctx context.Context, audit *domain.SettlementAudit) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if audit.ID.IsZero() {
		audit.ID = primitive.NewObjectID()
	}
	if audit.CheckedAt.IsZero() {
		audit.CheckedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, audit)
	if err != nil {
		return fmt.Errorf("failed to create settlement audit: %w", err)
	}

	return nil
}

func (r *SettlementAuditRepository) GetByPaymentID(ctx context.Context, paymentID string, limit int) ([]domain.SettlementAudit, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"payment_id": paymentID}
	opts := options.Find().SetSort(bson.D{{Key: "checked_at", Value: -1}}).SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get settlement audits: %w", err)
	}
	defer cursor.Close(ctx)

	var audits []domain.SettlementAudit
	if err := cursor.All(ctx, &audits); err != nil {
		return nil, fmt.Errorf("failed to decode settlement audits: %w", err)
	}

	return audits, nil
}
