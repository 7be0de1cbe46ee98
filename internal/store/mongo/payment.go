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

type PaymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{
		collection: db.Collection("payments"),
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) GetByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []domain.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}

	return payments, nil
}

func (r *PaymentRepository) EstimatedCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.collection.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}

	return count, nil
}

func (r *PaymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode revenue: %w", err)
	}

	// no payments yet
	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Total, nil
}

// OrderStatsByCategory restricts to payments that carry a menuIds list
// (pure reservation-fee payments are excluded), unwinds the list, joins
// each identifier against the menu collection and groups by the resolved
// item's category. The join matches either _id shape: the identifier
// converted to an ObjectID, or the raw string a legacy row carries.
// Revenue sums the item's current menu price, not the price at purchase
// time.
func (r *PaymentRepository) OrderStatsByCategory(ctx context.Context) ([]domain.CategoryOrderStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"menuIds": bson.M{"$exists": true}}}},
		{{Key: "$unwind", Value: "$menuIds"}},
		{{Key: "$lookup", Value: bson.M{
			"from": "menu",
			"let":  bson.M{"menuId": "$menuIds"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"$expr": bson.M{"$or": bson.A{
					bson.M{"$eq": bson.A{"$_id", bson.M{"$convert": bson.M{
						"input":   "$$menuId",
						"to":      "objectId",
						"onError": nil,
					}}}},
					bson.M{"$eq": bson.A{"$_id", "$$menuId"}},
				}}}},
			},
			"as": "menuItems",
		}}},
		{{Key: "$unwind", Value: "$menuItems"}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$menuItems.category",
			"quantity": bson.M{"$sum": 1},
			"revenue":  bson.M{"$sum": "$menuItems.price"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":      0,
			"category": "$_id",
			"quantity": 1,
			"revenue":  1,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate order stats: %w", err)
	}
	defer cursor.Close(ctx)

	var stats []domain.CategoryOrderStats
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode order stats: %w", err)
	}

	return stats, nil
}

func (r *PaymentRepository) UserStats(ctx context.Context, email string) (*domain.UserStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// menuIds may be absent (reservation-fee payments); $isArray guards
	// the $size so those count zero items
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"email": email}}},
		{{Key: "$group", Value: bson.M{
			"_id":         "$email",
			"wastedMoney": bson.M{"$sum": "$amount"},
			"totalOrder":  bson.M{"$sum": 1},
			"totalItem": bson.M{"$sum": bson.M{"$size": bson.M{"$cond": bson.A{
				bson.M{"$isArray": "$menuIds"},
				"$menuIds",
				bson.A{},
			}}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate user stats: %w", err)
	}
	defer cursor.Close(ctx)

	var results []domain.UserStats
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode user stats: %w", err)
	}

	// an email with no payments is an empty aggregate, not an error
	if len(results) == 0 {
		return &domain.UserStats{}, nil
	}

	return &results[0], nil
}
