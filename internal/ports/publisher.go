package ports

import "context"

// EventPublisher broadcasts domain events to interested consumers.
// Publishing is best-effort; callers log failures and carry on.
type EventPublisher interface {
	Publish(ctx context.Context, channel string, payload any) error
}
