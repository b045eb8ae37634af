package ports

import (
	"context"

	"shopopti-integration-layer/internal/domain"
)

// ShopClient reads live data from a connected Shopify store.
type ShopClient interface {
	GetShop(ctx context.Context, storeDomain string, accessToken string) (*domain.ShopInfo, error)
}
