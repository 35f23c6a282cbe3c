package ports

import (
	"context"

	"github.com/pegasus-tool/admin-api/internal/core/domain"
)

// UserRepository defines persistence operations on the backend users table.
// Writes are partial updates by id; the repository never touches fields other
// than the ones named by the method.
type UserRepository interface {
	// ListAll returns every user row, already translated to the canonical
	// field schema but without normalization defaults applied.
	ListAll(ctx context.Context) ([]domain.User, error)

	FindByID(ctx context.Context, id string) (*domain.User, error)

	// UpdateCredits overwrites the credits field only.
	UpdateCredits(ctx context.Context, id, credits string) error

	// UpdateBlock overwrites the block flag only.
	UpdateBlock(ctx context.Context, id, block string) error

	// UpdateExpiry overwrites the expiry timestamp and activation flag.
	UpdateExpiry(ctx context.Context, id, expiryTime, activate string) error
}
