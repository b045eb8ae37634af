package platform

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"shopopti-integration-layer/internal/domain"

	"github.com/rs/zerolog"
)

// WooCommerceValidator confirms WooCommerce credentials with a read-only call
// to the REST API root. Unlike Shopify, a 401 still counts as success: it
// proves the request reached a live WooCommerce endpoint, and stores commonly
// restrict the root route while the keys themselves are fine.
type WooCommerceValidator struct {
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewWooCommerceValidator creates a WooCommerce credential validator.
func NewWooCommerceValidator(httpClient *http.Client, logger zerolog.Logger) *WooCommerceValidator {
	return &WooCommerceValidator{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Validate checks that the required fields are present, then probes the REST
// API root with HTTP Basic auth. No network call is made with incomplete
// credentials.
func (v *WooCommerceValidator) Validate(ctx context.Context, creds domain.Credentials) (out domain.Outcome) {
	defer func() { observeValidation(domain.PlatformWooCommerce, out) }()

	storeURL := creds["store_url"]
	key := creds["consumer_key"]
	secret := creds["consumer_secret"]
	if storeURL == "" || key == "" || secret == "" {
		return domain.Rejected("store_url, consumer_key and consumer_secret required")
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, normalizeStoreURL(storeURL)+"/wp-json/wc/v3", nil)
	if err != nil {
		return domain.TransportFault(err.Error())
	}
	req.SetBasicAuth(key, secret)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.logger.Warn().Err(err).Str("store", storeURL).Msg("WooCommerce probe failed")
		return domain.TransportFault(err.Error())
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusUnauthorized {
		return domain.Accepted()
	}
	return domain.Rejected(fmt.Sprintf("WooCommerce responded with status %d", resp.StatusCode))
}
