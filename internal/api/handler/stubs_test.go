package handler

import (
	"context"

	"github.com/pegasus-tool/admin-api/internal/core/domain"
	"github.com/pegasus-tool/admin-api/internal/core/ports"
)

// Scriptable service stubs. Each method delegates to a function field so
// tests can inject behavior per case.

type stubDirectoryService struct {
	listUsersFn      func(ctx context.Context) ([]domain.User, error)
	listOperationsFn func(ctx context.Context) ([]domain.Operation, error)
}

func (s *stubDirectoryService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listUsersFn(ctx)
}

func (s *stubDirectoryService) ListOperations(ctx context.Context) ([]domain.Operation, error) {
	return s.listOperationsFn(ctx)
}

type stubBillingService struct {
	refundFn     func(ctx context.Context, operationID string) (*ports.RefundResult, error)
	addCreditFn  func(ctx context.Context, userID string, amount float64) (string, error)
	setBlockedFn func(ctx context.Context, userID string, blocked bool) error
	renewFn      func(ctx context.Context, userID string, months int) error
}

func (s *stubBillingService) Refund(ctx context.Context, operationID string) (*ports.RefundResult, error) {
	return s.refundFn(ctx, operationID)
}

func (s *stubBillingService) AddCredit(ctx context.Context, userID string, amount float64) (string, error) {
	return s.addCreditFn(ctx, userID, amount)
}

func (s *stubBillingService) SetBlocked(ctx context.Context, userID string, blocked bool) error {
	return s.setBlockedFn(ctx, userID, blocked)
}

func (s *stubBillingService) Renew(ctx context.Context, userID string, months int) error {
	return s.renewFn(ctx, userID, months)
}

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password string, bootstrap bool) (*domain.Admin, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.Admin, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password string, bootstrap bool) (*domain.Admin, error) {
	return s.registerFn(ctx, email, password, bootstrap)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	return s.loginFn(ctx, email, password)
}

type stubStatsService struct {
	dashboardFn func(ctx context.Context, lang string) (*ports.DashboardResult, error)
	monthlyFn   func(ctx context.Context, lang string) ([]ports.ChartPoint, error)
	typesFn     func(ctx context.Context) ([]ports.ChartPoint, error)
	countriesFn func(ctx context.Context) ([]ports.ChartPoint, error)
}

func (s *stubStatsService) Dashboard(ctx context.Context, lang string) (*ports.DashboardResult, error) {
	return s.dashboardFn(ctx, lang)
}

func (s *stubStatsService) MonthlyOperations(ctx context.Context, lang string) ([]ports.ChartPoint, error) {
	return s.monthlyFn(ctx, lang)
}

func (s *stubStatsService) OperationTypes(ctx context.Context) ([]ports.ChartPoint, error) {
	return s.typesFn(ctx)
}

func (s *stubStatsService) UserCountries(ctx context.Context) ([]ports.ChartPoint, error) {
	return s.countriesFn(ctx)
}

// stubDispatcher records enqueued events instead of running workers.
type stubDispatcher struct {
	events  []ports.OperationEventInput
	batches int
}

func (d *stubDispatcher) Enqueue(event ports.OperationEventInput) {
	d.events = append(d.events, event)
}

func (d *stubDispatcher) EnqueueBatch(events []ports.OperationEventInput) {
	d.batches++
	d.events = append(d.events, events...)
}
