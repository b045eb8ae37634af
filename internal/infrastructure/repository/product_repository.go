package repository

import (
	"context"
	"fmt"
	"time"

	"shopopti-integration-layer/internal/domain"
	"shopopti-integration-layer/internal/infrastructure/repository/entity"
	"shopopti-integration-layer/internal/ports"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProductRepository implements ProductRepository using MongoDB
type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates a new MongoDB product repository
func NewMongoProductRepository(db *mongo.Database) ports.ProductRepository {
	return &MongoProductRepository{
		collection: db.Collection("products"),
	}
}

// Insert stores one imported product
func (r *MongoProductRepository) Insert(ctx context.Context, draft *domain.ProductDraft) error {
	doc := entity.MongoProductDocFromDraft(draft)
	doc.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	return nil
}
