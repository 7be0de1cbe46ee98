package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Storage struct {
	client   *mongo.Client
	database *mongo.Database
	config   Config
}

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func New(cfg Config) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(100).
		SetMinPoolSize(10)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	database := client.Database(cfg.Database)

	return &Storage{
		client:   client,
		database: database,
		config:   cfg,
	}, nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Storage) Database() *mongo.Database {
	return s.database
}

func (s *Storage) Client() *mongo.Client {
	return s.client
}

func (s *Storage) CreateIndexes(ctx context.Context) error {
	// users and reviews are keyed by email
	emailUnique := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	for _, name := range []string{"users", "reviews"} {
		if _, err := s.database.Collection(name).Indexes().CreateMany(ctx, emailUnique); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}

	menuIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
	}
	if _, err := s.database.Collection("menu").Indexes().CreateMany(ctx, menuIndexes); err != nil {
		return fmt.Errorf("failed to create menu indexes: %w", err)
	}

	// carts, reservations and payments are read per owner
	ownerIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
	}
	for _, name := range []string{"carts", "reservations", "payments"} {
		if _, err := s.database.Collection(name).Indexes().CreateMany(ctx, ownerIndexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}

	auditIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "payment_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "checked_at", Value: 1}},
		},
	}
	if _, err := s.database.Collection("settlement_audit").Indexes().CreateMany(ctx, auditIndexes); err != nil {
		return fmt.Errorf("failed to create settlement_audit indexes: %w", err)
	}

	tasksIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: 1}},
		},
	}
	if _, err := s.database.Collection("import_tasks").Indexes().CreateMany(ctx, tasksIndexes); err != nil {
		return fmt.Errorf("failed to create import_tasks indexes: %w", err)
	}

	return nil
}
