package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MenuRepository struct {
	collection *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{
		collection: db.Collection("menu"),
	}
}

func (r *MenuRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if item.ID.IsZero() {
		item.ID = domain.NativeItemID(primitive.NewObjectID())
	}

	_, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	return nil
}

func (r *MenuRepository) CreateMany(ctx context.Context, items []domain.MenuItem) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(items))
	for i := range items {
		if items[i].ID.IsZero() {
			items[i].ID = domain.NativeItemID(primitive.NewObjectID())
		}
		docs = append(docs, items[i])
	}

	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("failed to insert menu items: %w", err)
	}

	return len(result.InsertedIDs), nil
}

func (r *MenuRepository) GetAll(ctx context.Context) ([]domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	defer cursor.Close(ctx)

	var items []domain.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode menu: %w", err)
	}

	return items, nil
}

// GetByID tries each _id interpretation in order: native ObjectID first,
// then the raw string form some legacy rows still carry.
func (r *MenuRepository) GetByID(ctx context.Context, id domain.ItemID) (*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	for _, filter := range id.Filters() {
		var item domain.MenuItem
		err := r.collection.FindOne(ctx, filter).Decode(&item)
		if err == nil {
			return &item, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, fmt.Errorf("failed to get menu item: %w", err)
		}
	}

	return nil, fmt.Errorf("menu item not found")
}

func (r *MenuRepository) Update(ctx context.Context, id domain.ItemID, item *domain.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"name":     item.Name,
			"recipe":   item.Recipe,
			"image":    item.Image,
			"category": item.Category,
			"price":    item.Price,
		},
	}

	for _, filter := range id.Filters() {
		result, err := r.collection.UpdateOne(ctx, filter, update)
		if err != nil {
			return fmt.Errorf("failed to update menu item: %w", err)
		}
		if result.MatchedCount > 0 {
			return nil
		}
	}

	return fmt.Errorf("menu item not found")
}

func (r *MenuRepository) Delete(ctx context.Context, id domain.ItemID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	for _, filter := range id.Filters() {
		result, err := r.collection.DeleteOne(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to delete menu item: %w", err)
		}
		if result.DeletedCount > 0 {
			return nil
		}
	}

	return fmt.Errorf("menu item not found")
}

func (r *MenuRepository) EstimatedCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.collection.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}

	return count, nil
}
