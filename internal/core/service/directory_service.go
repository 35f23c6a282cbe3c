package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/pegasus-tool/admin-api/internal/api/metrics"
	"github.com/pegasus-tool/admin-api/internal/core/domain"
	"github.com/pegasus-tool/admin-api/internal/core/ports"
)

// DirectoryService retrieves the full user and operation collections from the
// backend and returns them normalized. It never writes.
type DirectoryService struct {
	users      ports.UserRepository
	operations ports.OperationRepository
	logger     zerolog.Logger
}

func NewDirectoryService(users ports.UserRepository, operations ports.OperationRepository, logger zerolog.Logger) *DirectoryService {
	return &DirectoryService{users: users, operations: operations, logger: logger}
}

// ListUsers returns all users with per-field defaults applied.
func (s *DirectoryService) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.users.ListAll(ctx)
	if err != nil {
		metrics.FetchErrorsTotal.WithLabelValues("users").Inc()
		s.logger.Error().Err(err).Msg("failed to fetch users")
		return nil, &domain.FetchError{Entity: "users", Err: err}
	}

	out := make([]domain.User, len(rows))
	for i, u := range rows {
		out[i] = domain.NormalizeUser(u)
	}
	return out, nil
}

// ListOperations returns all operations normalized and sorted by timestamp
// descending. A timestamp that fails to parse keeps the record in the listing
// and sorts by the raw string instead.
func (s *DirectoryService) ListOperations(ctx context.Context) ([]domain.Operation, error) {
	rows, err := s.operations.ListAll(ctx)
	if err != nil {
		metrics.FetchErrorsTotal.WithLabelValues("operations").Inc()
		s.logger.Error().Err(err).Msg("failed to fetch operations")
		return nil, &domain.FetchError{Entity: "operations", Err: err}
	}

	out := make([]domain.Operation, len(rows))
	for i, op := range rows {
		out[i] = domain.NormalizeOperation(op)
	}
	sortOperationsDesc(out)
	return out, nil
}

// sortOperationsDesc orders operations newest-first. Records whose timestamp
// parses sort before records whose timestamp does not; within each group the
// order is by parsed time or raw string, both descending. The sort is stable
// so equal keys keep their backend order.
func sortOperationsDesc(ops []domain.Operation) {
	type keyed struct {
		op domain.Operation
		t  int64
		ok bool
	}
	rows := make([]keyed, len(ops))
	for i, op := range ops {
		rows[i].op = op
		if t, ok := domain.ParseTimestamp(op.Time); ok {
			rows[i].t = t.UnixNano()
			rows[i].ok = true
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		ki, kj := rows[i], rows[j]
		switch {
		case ki.ok && kj.ok:
			return ki.t > kj.t
		case ki.ok != kj.ok:
			return ki.ok
		default:
			return ki.op.Time > kj.op.Time
		}
	})
	for i, r := range rows {
		ops[i] = r.op
	}
}
