package ports

import (
	"context"

	"github.com/pegasus-tool/admin-api/internal/core/domain"
)

// AdminRepository defines the interface for console operator persistence.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	// Count returns the number of registered admin accounts. Used to decide
	// whether open bootstrap registration is still allowed.
	Count(ctx context.Context) (int64, error)
}
