package entity

import (
	"time"

	"shopopti-integration-layer/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoProductDoc represents an imported catalog product in MongoDB
type MongoProductDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// MongoProductDocFromDraft converts an import draft to a MongoDB document
func MongoProductDocFromDraft(draft *domain.ProductDraft) *MongoProductDoc {
	return &MongoProductDoc{
		UserID:      draft.UserID,
		Title:       draft.Title,
		Description: draft.Description,
		Price:       draft.Price,
	}
}
