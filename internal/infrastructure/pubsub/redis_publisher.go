// Package pubsub publishes domain events for consumption by other services.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"shopopti-integration-layer/internal/ports"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisPublisher broadcasts domain events on Redis channels. Delivery is
// fire-and-forget; nobody listening is not an error.
type RedisPublisher struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewRedisPublisher creates a Redis-backed event publisher
func NewRedisPublisher(client *redis.Client, logger zerolog.Logger) ports.EventPublisher {
	return &RedisPublisher{
		client: client,
		logger: logger,
	}
}

// Publish marshals the payload to JSON and publishes it on the channel.
func (p *RedisPublisher) Publish(ctx context.Context, channel string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.client.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug().Str("channel", channel).Msg("Published event")
	return nil
}
