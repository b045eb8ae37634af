package repository

import (
	"context"
	"fmt"
	"time"

	"shopopti-integration-layer/internal/domain"
	"shopopti-integration-layer/internal/infrastructure/repository/entity"
	"shopopti-integration-layer/internal/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoConnectionRepository implements ConnectionRepository using MongoDB
type MongoConnectionRepository struct {
	collection *mongo.Collection
}

// NewMongoConnectionRepository creates a new MongoDB connection repository
func NewMongoConnectionRepository(db *mongo.Database) ports.ConnectionRepository {
	return &MongoConnectionRepository{
		collection: db.Collection("connected_integrations"),
	}
}

// Create persists a new connection record. Duplicate user+platform pairs are
// allowed; the store enforces no uniqueness beyond the record id.
func (r *MongoConnectionRepository) Create(ctx context.Context, conn *domain.Connection) error {
	doc := entity.MongoConnectionDocFromDomain(conn)
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create connection: %w", err)
	}

	return nil
}

// GetByID retrieves a connection by its id
func (r *MongoConnectionRepository) GetByID(ctx context.Context, id string) (*domain.Connection, error) {
	var doc entity.MongoConnectionDoc
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}

	return doc.ToDomain(), nil
}

// ListByUser retrieves every connection owned by a user
func (r *MongoConnectionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Connection, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	defer cursor.Close(ctx)

	var conns []*domain.Connection
	for cursor.Next(ctx) {
		var doc entity.MongoConnectionDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode connection: %w", err)
		}
		conns = append(conns, doc.ToDomain())
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return conns, nil
}

// Delete removes a connection by its id
func (r *MongoConnectionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete connection: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
