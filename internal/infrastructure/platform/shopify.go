package platform

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"shopopti-integration-layer/internal/domain"

	"github.com/rs/zerolog"
)

// shopifyAPIVersion pins the Admin API version used for the probe call.
const shopifyAPIVersion = "2024-01"

// ShopifyValidator confirms Shopify credentials with a single read-only call
// to the shop endpoint. Shopify answers 200 only when the token is valid, so
// any other status is a rejection.
type ShopifyValidator struct {
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewShopifyValidator creates a Shopify credential validator.
func NewShopifyValidator(httpClient *http.Client, logger zerolog.Logger) *ShopifyValidator {
	return &ShopifyValidator{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Validate checks that the required fields are present, then probes the shop
// endpoint with the supplied access token. No network call is made with
// incomplete credentials.
func (v *ShopifyValidator) Validate(ctx context.Context, creds domain.Credentials) (out domain.Outcome) {
	defer func() { observeValidation(domain.PlatformShopify, out) }()

	storeURL := creds["store_url"]
	token := creds["access_token"]
	if storeURL == "" || token == "" {
		return domain.Rejected("store_url and access_token required")
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/admin/api/%s/shop.json", normalizeStoreURL(storeURL), shopifyAPIVersion)
	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, url, nil)
	if err != nil {
		return domain.TransportFault(err.Error())
	}
	req.Header.Set("X-Shopify-Access-Token", token)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.logger.Warn().Err(err).Str("store", storeURL).Msg("Shopify probe failed")
		return domain.TransportFault(err.Error())
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return domain.Rejected(fmt.Sprintf("Shopify responded with status %d", resp.StatusCode))
	}
	return domain.Accepted()
}
