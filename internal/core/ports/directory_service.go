package ports

import (
	"context"

	"github.com/pegasus-tool/admin-api/internal/core/domain"
)

// DirectoryService is the fetch-and-normalize layer: it retrieves the full
// user and operation collections, applies per-field defaults, and sorts
// operations by timestamp descending. It performs no writes.
type DirectoryService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListOperations(ctx context.Context) ([]domain.Operation, error)
}
