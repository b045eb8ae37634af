package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"shopopti-integration-layer/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestShopifyValidator_MissingFields(t *testing.T) {
	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer server.Close()

	v := NewShopifyValidator(server.Client(), zerolog.Nop())

	cases := []domain.Credentials{
		{},
		{"store_url": server.URL},
		{"access_token": "tok"},
		{"store_url": "", "access_token": "tok"},
	}
	for _, creds := range cases {
		out := v.Validate(context.Background(), creds)
		assert.Equal(t, domain.OutcomeRejected, out.Kind)
		assert.Equal(t, "store_url and access_token required", out.Reason)
	}
	assert.EqualValues(t, 0, atomic.LoadInt64(&calls), "field checks must not reach the network")
}

func TestShopifyValidator_StatusPolicy(t *testing.T) {
	cases := []struct {
		status int
		kind   domain.OutcomeKind
		reason string
	}{
		{http.StatusOK, domain.OutcomeValid, ""},
		{http.StatusUnauthorized, domain.OutcomeRejected, "Shopify responded with status 401"},
		{http.StatusForbidden, domain.OutcomeRejected, "Shopify responded with status 403"},
		{http.StatusNotFound, domain.OutcomeRejected, "Shopify responded with status 404"},
		{http.StatusInternalServerError, domain.OutcomeRejected, "Shopify responded with status 500"},
	}

	for _, tc := range cases {
		status := tc.status
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/admin/api/2024-01/shop.json", r.URL.Path)
			assert.Equal(t, "tok", r.Header.Get("X-Shopify-Access-Token"))
			w.WriteHeader(status)
		}))

		v := NewShopifyValidator(server.Client(), zerolog.Nop())
		out := v.Validate(context.Background(), domain.Credentials{
			"store_url":    server.URL,
			"access_token": "tok",
		})

		assert.Equal(t, tc.kind, out.Kind, "status %d", tc.status)
		assert.Equal(t, tc.reason, out.Reason, "status %d", tc.status)
		server.Close()
	}
}

func TestShopifyValidator_TransportFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuses connections from here on

	v := NewShopifyValidator(&http.Client{}, zerolog.Nop())
	out := v.Validate(context.Background(), domain.Credentials{
		"store_url":    server.URL,
		"access_token": "tok",
	})

	assert.Equal(t, domain.OutcomeTransportFault, out.Kind)
	assert.NotEmpty(t, out.Reason)
}

func TestNormalizeStoreURL(t *testing.T) {
	assert.Equal(t, "https://x.myshopify.com", normalizeStoreURL("x.myshopify.com"))
	assert.Equal(t, "https://x.myshopify.com", normalizeStoreURL("https://x.myshopify.com"))
	assert.Equal(t, "http://127.0.0.1:8080", normalizeStoreURL("http://127.0.0.1:8080"))
}
