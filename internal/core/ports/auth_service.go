package ports

import (
	"context"

	"github.com/pegasus-tool/admin-api/internal/core/domain"
)

type AuthService interface {
	// Register creates a console operator account. Open only while no admin
	// exists (bootstrap); afterwards callers must already hold the admin role.
	Register(ctx context.Context, email, password string, bootstrap bool) (*domain.Admin, error)
	Login(ctx context.Context, email, password string) (string, *domain.Admin, error)
}
