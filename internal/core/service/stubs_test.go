package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pegasus-tool/admin-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User

	listErr   error // if set, ListAll returns this error
	findErr   error // if set, FindByID returns this error
	updateErr error // if set, every update returns this error

	// findFn, when set, overrides FindByID entirely (used to script stale
	// reads for the lost-update test).
	findFn func(id string) (*domain.User, error)
}

func newStubUserRepo(users ...domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		clone := u
		r.users[u.ID] = &clone
	}
	return r
}

func (r *stubUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findFn != nil {
		return r.findFn(id)
	}
	if r.findErr != nil {
		return nil, r.findErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) UpdateCredits(_ context.Context, id, credits string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Credits = credits
	return nil
}

func (r *stubUserRepo) UpdateBlock(_ context.Context, id, block string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Block = block
	return nil
}

func (r *stubUserRepo) UpdateExpiry(_ context.Context, id, expiryTime, activate string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.ExpiryTime = expiryTime
	u.Activate = activate
	return nil
}

type stubOperationRepo struct {
	mu  sync.Mutex
	ops map[string]*domain.Operation
	// order preserves backend insertion order for ListAll.
	order []string

	listErr   error
	updateErr error
	insertErr error
}

func newStubOperationRepo(ops ...domain.Operation) *stubOperationRepo {
	r := &stubOperationRepo{ops: make(map[string]*domain.Operation)}
	for _, op := range ops {
		clone := op
		r.ops[op.OperationID] = &clone
		r.order = append(r.order, op.OperationID)
	}
	return r
}

func (r *stubOperationRepo) ListAll(_ context.Context) ([]domain.Operation, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Operation, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.ops[id])
	}
	return out, nil
}

func (r *stubOperationRepo) FindByID(_ context.Context, id string) (*domain.Operation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	op, ok := r.ops[id]
	if !ok {
		return nil, domain.ErrOperationNotFound
	}
	clone := *op
	return &clone, nil
}

func (r *stubOperationRepo) UpdateStatusAndCredit(_ context.Context, id, status, credit string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	op, ok := r.ops[id]
	if !ok {
		return domain.ErrOperationNotFound
	}
	op.Status = status
	op.Credit = credit
	return nil
}

func (r *stubOperationRepo) Insert(_ context.Context, op *domain.Operation) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *op
	r.ops[op.OperationID] = &clone
	r.order = append(r.order, op.OperationID)
	return nil
}

// stubGuard is a scriptable RefundGuard.
type stubGuard struct {
	refunded map[string]bool
	checkErr error
	markErr  error
	marked   []string
}

func newStubGuard() *stubGuard {
	return &stubGuard{refunded: make(map[string]bool)}
}

func (g *stubGuard) IsRefunded(_ context.Context, operationID string) (bool, error) {
	if g.checkErr != nil {
		return false, g.checkErr
	}
	return g.refunded[operationID], nil
}

func (g *stubGuard) Mark(_ context.Context, operationID string) error {
	if g.markErr != nil {
		return g.markErr
	}
	g.refunded[operationID] = true
	g.marked = append(g.marked, operationID)
	return nil
}

// stubStatsCache is an in-memory StatsCache.
type stubStatsCache struct {
	data map[string][]byte
	gets int
	sets int
	err  error
}

func newStubStatsCache() *stubStatsCache {
	return &stubStatsCache{data: make(map[string][]byte)}
}

func (c *stubStatsCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.gets++
	if c.err != nil {
		return false, c.err
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *stubStatsCache) Set(_ context.Context, key string, value any) error {
	c.sets++
	if c.err != nil {
		return c.err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}
