package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const refundGuardTTL = 24 * time.Hour

// RefundGuard records completed refunds so an operator double-submitting the
// same operation within the TTL window gets a conflict instead of a second
// credit. Key format: refund:<operation_id>
type RefundGuard struct {
	client *redis.Client
}

// NewRefundGuard creates a RefundGuard wrapping the given Redis client.
func NewRefundGuard(client *redis.Client) *RefundGuard {
	return &RefundGuard{client: client}
}

// IsRefunded reports whether this operation was already refunded recently.
func (g *RefundGuard) IsRefunded(ctx context.Context, operationID string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(operationID)).Result()
	if err != nil {
		return false, fmt.Errorf("refund guard check: %w", err)
	}
	return n > 0, nil
}

// Mark records a completed refund (expires after refundGuardTTL).
func (g *RefundGuard) Mark(ctx context.Context, operationID string) error {
	return g.client.Set(ctx, g.key(operationID), "1", refundGuardTTL).Err()
}

func (g *RefundGuard) key(operationID string) string {
	return "refund:" + operationID
}
