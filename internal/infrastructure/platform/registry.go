// Package platform contains the per-platform credential validation
// strategies and the static registry that dispatches to them.
package platform

import (
	"net/http"
	"strings"
	"time"

	"shopopti-integration-layer/internal/domain"
	"shopopti-integration-layer/internal/ports"

	"github.com/rs/zerolog"
)

// probeTimeout bounds the single outbound probe a validator performs.
const probeTimeout = 10 * time.Second

// Registry maps platform identifiers to their validation strategy. The set
// of supported platforms is fixed at build time; adding one means adding a
// strategy and an entry here, not touching dispatch logic.
type Registry struct {
	validators map[string]ports.CredentialValidator
}

// NewRegistry creates a registry with every supported platform registered.
func NewRegistry(httpClient *http.Client, logger zerolog.Logger) *Registry {
	return &Registry{
		validators: map[string]ports.CredentialValidator{
			domain.PlatformShopify:     NewShopifyValidator(httpClient, logger),
			domain.PlatformWooCommerce: NewWooCommerceValidator(httpClient, logger),
		},
	}
}

// Lookup returns the validator for the given platform identifier. The match
// is exact and case-sensitive; an unknown identifier is not an error here,
// the caller surfaces it.
func (r *Registry) Lookup(platform string) (ports.CredentialValidator, bool) {
	v, ok := r.validators[platform]
	return v, ok
}

// normalizeStoreURL mirrors what merchants paste into the connect form:
// bare store domains get an https scheme prepended.
func normalizeStoreURL(storeURL string) string {
	if !strings.HasPrefix(storeURL, "http://") && !strings.HasPrefix(storeURL, "https://") {
		return "https://" + storeURL
	}
	return storeURL
}
