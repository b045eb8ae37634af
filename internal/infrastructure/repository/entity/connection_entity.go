package entity

import (
	"time"

	"shopopti-integration-layer/internal/domain"
)

// MongoConnectionDoc represents a connected integration in MongoDB
type MongoConnectionDoc struct {
	ID          string            `bson:"_id"`
	UserID      string            `bson:"user_id"`
	Platform    string            `bson:"platform"`
	Credentials map[string]string `bson:"credentials"`
	CreatedAt   time.Time         `bson:"created_at"`
}

// ToDomain converts the MongoDB document to a domain entity
func (d *MongoConnectionDoc) ToDomain() *domain.Connection {
	return &domain.Connection{
		ID:          d.ID,
		UserID:      d.UserID,
		Platform:    d.Platform,
		Credentials: domain.Credentials(d.Credentials),
		CreatedAt:   d.CreatedAt,
	}
}

// MongoConnectionDocFromDomain converts a domain entity to a MongoDB document
func MongoConnectionDocFromDomain(conn *domain.Connection) *MongoConnectionDoc {
	return &MongoConnectionDoc{
		ID:          conn.ID,
		UserID:      conn.UserID,
		Platform:    conn.Platform,
		Credentials: conn.Credentials,
		CreatedAt:   conn.CreatedAt,
	}
}
