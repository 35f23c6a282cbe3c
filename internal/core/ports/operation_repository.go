package ports

import (
	"context"

	"github.com/pegasus-tool/admin-api/internal/core/domain"
)

// OperationRepository defines persistence operations on the backend
// operations table.
type OperationRepository interface {
	// ListAll returns every operation row, translated to the canonical field
	// schema but without normalization defaults applied.
	ListAll(ctx context.Context) ([]domain.Operation, error)

	FindByID(ctx context.Context, id string) (*domain.Operation, error)

	// UpdateStatusAndCredit partially updates one operation's status and
	// credit fields, leaving everything else untouched.
	UpdateStatusAndCredit(ctx context.Context, id, status, credit string) error

	// Insert persists a newly ingested operation record.
	Insert(ctx context.Context, op *domain.Operation) error
}
