package domain

import "time"

// Platform identifiers accepted by the validator registry.
const (
	PlatformShopify     = "shopify"
	PlatformWooCommerce = "woocommerce"
)

// Credentials is an opaque set of platform-specific credential fields.
// Its shape is only understood by the platform's validator.
type Credentials map[string]string

// Connection represents a validated link between a user and an external
// e-commerce platform. A record is only ever created after its credentials
// passed validation for that platform; they are stored as received.
type Connection struct {
	ID          string      `json:"id" bson:"_id"`
	UserID      string      `json:"user_id" bson:"user_id"`
	Platform    string      `json:"platform" bson:"platform"`
	Credentials Credentials `json:"credentials" bson:"credentials"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}

// ShopInfo is live shop metadata read from a connected Shopify store.
type ShopInfo struct {
	Name     string `json:"name"`
	Domain   string `json:"domain"`
	Email    string `json:"email"`
	Currency string `json:"currency"`
	Plan     string `json:"plan"`
}
