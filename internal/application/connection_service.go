package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopopti-integration-layer/internal/domain"
	"shopopti-integration-layer/internal/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// persistTimeout bounds every data-store call made by the services. The
// validation probe carries its own timeout inside the validators.
const persistTimeout = 5 * time.Second

// ErrNotShopify is returned when a live-shop read is requested for a
// connection to a platform that has no shop endpoint.
var ErrNotShopify = errors.New("live shop info requires a shopify connection")

// ConnectionService orchestrates platform credential validation and owns the
// lifecycle of connection records.
type ConnectionService struct {
	registry ports.ValidatorRegistry
	repo     ports.ConnectionRepository
	shops    ports.ShopClient
	events   ports.EventPublisher
	logger   zerolog.Logger
}

// NewConnectionService creates a new connection service
func NewConnectionService(
	registry ports.ValidatorRegistry,
	repo ports.ConnectionRepository,
	shops ports.ShopClient,
	events ports.EventPublisher,
	logger zerolog.Logger,
) *ConnectionService {
	return &ConnectionService{
		registry: registry,
		repo:     repo,
		shops:    shops,
		events:   events,
		logger:   logger,
	}
}

// Connect validates the supplied credentials against the live platform API
// and persists a connection record only if validation succeeds. Failures come
// back as *domain.ConnectFailure so callers can tell input problems, rejected
// credentials, unreachable platforms and storage faults apart. Input problems
// are caught before any I/O.
func (s *ConnectionService) Connect(ctx context.Context, platform string, userID string, creds domain.Credentials) (*domain.Connection, error) {
	if userID == "" {
		return nil, &domain.ConnectFailure{Kind: domain.ConnectInvalidInput, Reason: "user_id required"}
	}

	validator, ok := s.registry.Lookup(platform)
	if !ok {
		return nil, &domain.ConnectFailure{Kind: domain.ConnectUnsupportedPlatform, Reason: "unsupported platform"}
	}

	outcome := validator.Validate(ctx, creds)
	switch outcome.Kind {
	case domain.OutcomeRejected:
		reason := outcome.Reason
		if reason == "" {
			reason = "invalid credentials"
		}
		s.logger.Info().
			Str("platform", platform).
			Str("reason", reason).
			Msg("Credentials rejected")
		return nil, &domain.ConnectFailure{Kind: domain.ConnectRejected, Reason: reason}
	case domain.OutcomeTransportFault:
		s.logger.Warn().
			Str("platform", platform).
			Str("detail", outcome.Reason).
			Msg("Platform unreachable during validation")
		return nil, &domain.ConnectFailure{Kind: domain.ConnectTransportFault, Reason: outcome.Reason}
	}

	conn := &domain.Connection{
		ID:          uuid.NewString(),
		UserID:      userID,
		Platform:    platform,
		Credentials: creds,
		CreatedAt:   time.Now(),
	}

	saveCtx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()
	if err := s.repo.Create(saveCtx, conn); err != nil {
		s.logger.Error().Err(err).Str("platform", platform).Msg("Failed to save connection")
		return nil, &domain.ConnectFailure{Kind: domain.ConnectPersistence, Reason: "failed to save connection"}
	}

	if err := s.events.Publish(ctx, domain.ChannelIntegrationConnected, domain.ConnectionEvent{
		ConnectionID: conn.ID,
		UserID:       userID,
		Platform:     platform,
		ConnectedAt:  conn.CreatedAt,
	}); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to publish connection event")
	}

	s.logger.Info().
		Str("platform", platform).
		Str("connectionId", conn.ID).
		Msg("Integration connected")
	return conn, nil
}

// List returns every connection owned by the user.
func (s *ConnectionService) List(ctx context.Context, userID string) ([]*domain.Connection, error) {
	listCtx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()

	conns, err := s.repo.ListByUser(listCtx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	return conns, nil
}

// Disconnect removes a connection record.
func (s *ConnectionService) Disconnect(ctx context.Context, id string) error {
	deleteCtx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()

	if err := s.repo.Delete(deleteCtx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete connection: %w", err)
	}

	s.logger.Info().Str("connectionId", id).Msg("Integration disconnected")
	return nil
}

// ShopInfo reads live shop metadata from a connected Shopify store using the
// stored credentials.
func (s *ConnectionService) ShopInfo(ctx context.Context, id string) (*domain.ShopInfo, error) {
	getCtx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()

	conn, err := s.repo.GetByID(getCtx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	if conn == nil {
		return nil, domain.ErrNotFound
	}
	if conn.Platform != domain.PlatformShopify {
		return nil, ErrNotShopify
	}

	return s.shops.GetShop(ctx, conn.Credentials["store_url"], conn.Credentials["access_token"])
}
