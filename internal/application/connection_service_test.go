package application

import (
	"context"
	"errors"
	"testing"

	"shopopti-integration-layer/internal/domain"
	"shopopti-integration-layer/internal/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidator struct {
	out   domain.Outcome
	calls int
}

func (f *fakeValidator) Validate(ctx context.Context, creds domain.Credentials) domain.Outcome {
	f.calls++
	return f.out
}

type fakeRegistry struct {
	validators map[string]ports.CredentialValidator
}

func (f *fakeRegistry) Lookup(platform string) (ports.CredentialValidator, bool) {
	v, ok := f.validators[platform]
	return v, ok
}

type fakeConnectionRepo struct {
	created   []*domain.Connection
	byID      map[string]*domain.Connection
	byUser    map[string][]*domain.Connection
	createErr error
	deleteErr error
}

func (f *fakeConnectionRepo) Create(ctx context.Context, conn *domain.Connection) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, conn)
	return nil
}

func (f *fakeConnectionRepo) GetByID(ctx context.Context, id string) (*domain.Connection, error) {
	return f.byID[id], nil
}

func (f *fakeConnectionRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Connection, error) {
	return f.byUser[userID], nil
}

func (f *fakeConnectionRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return nil
}

type fakePublisher struct {
	channels []string
}

func (f *fakePublisher) Publish(ctx context.Context, channel string, payload any) error {
	f.channels = append(f.channels, channel)
	return nil
}

type fakeShopClient struct {
	info      *domain.ShopInfo
	err       error
	gotDomain string
	gotToken  string
}

func (f *fakeShopClient) GetShop(ctx context.Context, storeDomain string, accessToken string) (*domain.ShopInfo, error) {
	f.gotDomain = storeDomain
	f.gotToken = accessToken
	return f.info, f.err
}

func newConnectionService(registry ports.ValidatorRegistry, repo *fakeConnectionRepo, shops ports.ShopClient, events *fakePublisher) *ConnectionService {
	return NewConnectionService(registry, repo, shops, events, zerolog.Nop())
}

func TestConnect_MissingUserID(t *testing.T) {
	v := &fakeValidator{out: domain.Accepted()}
	repo := &fakeConnectionRepo{}
	svc := newConnectionService(&fakeRegistry{validators: map[string]ports.CredentialValidator{"shopify": v}}, repo, nil, &fakePublisher{})

	_, err := svc.Connect(context.Background(), "shopify", "", domain.Credentials{"store_url": "x"})

	var failure *domain.ConnectFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, domain.ConnectInvalidInput, failure.Kind)
	assert.Equal(t, "user_id required", failure.Reason)
	assert.Zero(t, v.calls, "validation must not run without a user id")
	assert.Empty(t, repo.created)
}

func TestConnect_UnsupportedPlatform(t *testing.T) {
	v := &fakeValidator{out: domain.Accepted()}
	repo := &fakeConnectionRepo{}
	svc := newConnectionService(&fakeRegistry{validators: map[string]ports.CredentialValidator{"shopify": v}}, repo, nil, &fakePublisher{})

	_, err := svc.Connect(context.Background(), "magento", "u1", domain.Credentials{})

	var failure *domain.ConnectFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, domain.ConnectUnsupportedPlatform, failure.Kind)
	assert.Equal(t, "unsupported platform", failure.Reason)
	assert.Zero(t, v.calls)
	assert.Empty(t, repo.created)
}

func TestConnect_RejectedPropagatesReason(t *testing.T) {
	v := &fakeValidator{out: domain.Rejected("Shopify responded with status 401")}
	repo := &fakeConnectionRepo{}
	svc := newConnectionService(&fakeRegistry{validators: map[string]ports.CredentialValidator{"shopify": v}}, repo, nil, &fakePublisher{})

	_, err := svc.Connect(context.Background(), "shopify", "u1", domain.Credentials{})

	var failure *domain.ConnectFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, domain.ConnectRejected, failure.Kind)
	assert.Equal(t, "Shopify responded with status 401", failure.Reason)
	assert.Empty(t, repo.created)
}

func TestConnect_RejectedWithoutReasonFallsBack(t *testing.T) {
	v := &fakeValidator{out: domain.Outcome{Kind: domain.OutcomeRejected}}
	svc := newConnectionService(&fakeRegistry{validators: map[string]ports.CredentialValidator{"shopify": v}}, &fakeConnectionRepo{}, nil, &fakePublisher{})

	_, err := svc.Connect(context.Background(), "shopify", "u1", domain.Credentials{})

	var failure *domain.ConnectFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "invalid credentials", failure.Reason)
}

func TestConnect_TransportFault(t *testing.T) {
	v := &fakeValidator{out: domain.TransportFault("dial tcp: connection refused")}
	repo := &fakeConnectionRepo{}
	svc := newConnectionService(&fakeRegistry{validators: map[string]ports.CredentialValidator{"shopify": v}}, repo, nil, &fakePublisher{})

	_, err := svc.Connect(context.Background(), "shopify", "u1", domain.Credentials{})

	var failure *domain.ConnectFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, domain.ConnectTransportFault, failure.Kind)
	assert.Equal(t, "dial tcp: connection refused", failure.Reason)
	assert.Empty(t, repo.created)
}

func TestConnect_Success(t *testing.T) {
	v := &fakeValidator{out: domain.Accepted()}
	repo := &fakeConnectionRepo{}
	events := &fakePublisher{}
	svc := newConnectionService(&fakeRegistry{validators: map[string]ports.CredentialValidator{"shopify": v}}, repo, nil, events)

	creds := domain.Credentials{"store_url": "x.myshopify.com", "access_token": "tok"}
	conn, err := svc.Connect(context.Background(), "shopify", "u1", creds)

	require.NoError(t, err)
	require.Len(t, repo.created, 1, "exactly one record insertion")
	assert.Equal(t, conn, repo.created[0])
	assert.NotEmpty(t, conn.ID)
	assert.Equal(t, "u1", conn.UserID)
	assert.Equal(t, "shopify", conn.Platform)
	assert.Equal(t, creds, conn.Credentials)
	assert.Equal(t, 1, v.calls)
	assert.Equal(t, []string{domain.ChannelIntegrationConnected}, events.channels)
}

func TestConnect_PersistenceFailure(t *testing.T) {
	v := &fakeValidator{out: domain.Accepted()}
	repo := &fakeConnectionRepo{createErr: errors.New("write concern error")}
	events := &fakePublisher{}
	svc := newConnectionService(&fakeRegistry{validators: map[string]ports.CredentialValidator{"shopify": v}}, repo, nil, events)

	_, err := svc.Connect(context.Background(), "shopify", "u1", domain.Credentials{})

	var failure *domain.ConnectFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, domain.ConnectPersistence, failure.Kind)
	assert.Empty(t, events.channels, "no event for a connection that was not saved")
}

func TestDisconnect_NotFound(t *testing.T) {
	repo := &fakeConnectionRepo{deleteErr: domain.ErrNotFound}
	svc := newConnectionService(&fakeRegistry{}, repo, nil, &fakePublisher{})

	err := svc.Disconnect(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShopInfo(t *testing.T) {
	shopify := &domain.Connection{
		ID:       "c1",
		UserID:   "u1",
		Platform: domain.PlatformShopify,
		Credentials: domain.Credentials{
			"store_url":    "x.myshopify.com",
			"access_token": "tok",
		},
	}
	woo := &domain.Connection{ID: "c2", UserID: "u1", Platform: domain.PlatformWooCommerce}
	repo := &fakeConnectionRepo{byID: map[string]*domain.Connection{"c1": shopify, "c2": woo}}
	shops := &fakeShopClient{info: &domain.ShopInfo{Name: "Test Shop", Domain: "x.myshopify.com"}}
	svc := newConnectionService(&fakeRegistry{}, repo, shops, &fakePublisher{})

	info, err := svc.ShopInfo(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Test Shop", info.Name)
	assert.Equal(t, "x.myshopify.com", shops.gotDomain)
	assert.Equal(t, "tok", shops.gotToken)

	_, err = svc.ShopInfo(context.Background(), "c2")
	assert.ErrorIs(t, err, ErrNotShopify)

	_, err = svc.ShopInfo(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
