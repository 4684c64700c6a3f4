package contracts

import "context"

// OrderEventPublisher emits order lifecycle events for downstream consumers.
// A nil-safe no-op implementation backs deployments without a broker.
type OrderEventPublisher interface {
	Publish(ctx context.Context, eventType, orderID string, payload interface{}) error
}
