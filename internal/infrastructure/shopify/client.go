// Package shopify adapts the go-shopify Admin API client to the ShopClient port.
package shopify

import (
	"context"
	"fmt"

	"shopopti-integration-layer/internal/domain"
	"shopopti-integration-layer/internal/ports"

	goshopify "github.com/bold-commerce/go-shopify/v4"
	"github.com/rs/zerolog"
)

type client struct {
	logger zerolog.Logger
}

// NewClient creates a Shopify Admin API client adapter
func NewClient(logger zerolog.Logger) ports.ShopClient {
	return &client{logger: logger}
}

// GetShop reads shop metadata using the stored access token. A goshopify
// client is created per call; every connection carries its own token.
func (c *client) GetShop(ctx context.Context, storeDomain string, accessToken string) (*domain.ShopInfo, error) {
	sc, err := goshopify.NewClient(goshopify.App{}, storeDomain, accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	shop, err := sc.Shop.Get(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	c.logger.Debug().Str("shop", shop.Domain).Msg("Fetched shop metadata")
	return &domain.ShopInfo{
		Name:     shop.Name,
		Domain:   shop.Domain,
		Email:    shop.Email,
		Currency: shop.Currency,
		Plan:     shop.PlanName,
	}, nil
}
