package ports

import (
	"context"

	"shopopti-integration-layer/internal/domain"
)

// ConnectionRepository defines the interface for connection persistence
type ConnectionRepository interface {
	// Create persists a new connection record
	Create(ctx context.Context, conn *domain.Connection) error

	// GetByID retrieves a connection by its id, or nil when absent
	GetByID(ctx context.Context, id string) (*domain.Connection, error)

	// ListByUser retrieves every connection owned by a user
	ListByUser(ctx context.Context, userID string) ([]*domain.Connection, error)

	// Delete removes a connection by its id
	Delete(ctx context.Context, id string) error
}

// ProductRepository defines the interface for product catalog persistence
type ProductRepository interface {
	// Insert stores a single imported product
	Insert(ctx context.Context, draft *domain.ProductDraft) error
}
