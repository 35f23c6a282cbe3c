package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pegasus-tool/admin-api/internal/api/metrics"
	"github.com/pegasus-tool/admin-api/internal/core/domain"
	"github.com/pegasus-tool/admin-api/internal/core/ports"
)

// RefundGuard abstracts the refund idempotency store (Redis). It is advisory:
// guard failures are logged and the refund proceeds.
type RefundGuard interface {
	IsRefunded(ctx context.Context, operationID string) (bool, error)
	Mark(ctx context.Context, operationID string) error
}

// billingService implements every credit-balance mutation. The backend offers
// no multi-document transactions here, so the refund's two writes are
// sequential by contract; see Refund.
type billingService struct {
	users      ports.UserRepository
	operations ports.OperationRepository
	guard      RefundGuard
	log        zerolog.Logger
}

// NewBillingService returns a BillingService. The guard may be nil, in which
// case duplicate-refund detection is disabled.
func NewBillingService(
	users ports.UserRepository,
	operations ports.OperationRepository,
	guard RefundGuard,
	log zerolog.Logger,
) ports.BillingService {
	return &billingService{users: users, operations: operations, guard: guard, log: log}
}

// Refund restores the operation's charged credit to the owning user, then
// marks the operation failed with a zero credit.
//
// Failure semantics, step by step:
//   - user lookup fails        → RefundError("credit lookup"), nothing written
//   - balance write fails      → RefundError("balance update"), nothing written
//   - operation write fails    → RefundError("operation update"); the balance
//     IS already credited. Re-running the refund converges the operation
//     record (the guard is only marked after both writes succeed).
func (s *billingService) Refund(ctx context.Context, operationID string) (*ports.RefundResult, error) {
	start := time.Now()

	op, err := s.operations.FindByID(ctx, operationID)
	if err != nil {
		return nil, err
	}
	if op.UID == "" || op.Credit == "" {
		return nil, domain.ErrRefundInvalid
	}

	// 1. Duplicate check — advisory only.
	if s.guard != nil {
		dup, guardErr := s.guard.IsRefunded(ctx, operationID)
		if guardErr != nil {
			s.log.Warn().Err(guardErr).Str("operation_id", operationID).Msg("refund guard check failed, proceeding")
		} else if dup {
			return nil, domain.ErrRefundDuplicate
		}
	}

	// 2. Parse the refund amount; a malformed credit string refunds 0.
	refundAmount := domain.ParseAmount(op.Credit)

	// 3. Read the user's current balance.
	user, err := s.users.FindByID(ctx, op.UID)
	if err != nil {
		metrics.RefundErrorsTotal.WithLabelValues(domain.RefundReasonLookup).Inc()
		return nil, &domain.RefundError{Reason: domain.RefundReasonLookup, Err: err}
	}
	currentBalance := domain.ParseAmount(user.Credits)

	// 4. Write the new balance.
	newBalance := domain.FormatBalance(currentBalance + refundAmount)
	if err := s.users.UpdateCredits(ctx, op.UID, newBalance); err != nil {
		metrics.RefundErrorsTotal.WithLabelValues(domain.RefundReasonBalanceUpdate).Inc()
		return nil, &domain.RefundError{Reason: domain.RefundReasonBalanceUpdate, Err: err}
	}

	// 5. Mark the operation failed. Past this point a failure leaves the
	// system inconsistent (credit granted, operation unmarked).
	if err := s.operations.UpdateStatusAndCredit(ctx, operationID, domain.StatusFailed, "0.0"); err != nil {
		metrics.RefundErrorsTotal.WithLabelValues(domain.RefundReasonOperationUpdate).Inc()
		s.log.Error().Err(err).
			Str("operation_id", operationID).
			Str("uid", op.UID).
			Str("new_balance", newBalance).
			Msg("balance credited but operation not marked failed, re-run refund to converge")
		return nil, &domain.RefundError{Reason: domain.RefundReasonOperationUpdate, Err: err}
	}

	if s.guard != nil {
		if err := s.guard.Mark(ctx, operationID); err != nil {
			s.log.Warn().Err(err).Str("operation_id", operationID).Msg("failed to mark refund guard")
		}
	}

	metrics.RefundsTotal.Inc()
	metrics.RefundDuration.Observe(time.Since(start).Seconds())
	s.log.Info().
		Str("operation_id", operationID).
		Str("uid", op.UID).
		Float64("amount", refundAmount).
		Str("new_balance", newBalance).
		Msg("operation refunded")

	return &ports.RefundResult{
		OperationID: operationID,
		UserID:      op.UID,
		Amount:      refundAmount,
		NewBalance:  newBalance,
	}, nil
}

// AddCredit adds amount to the user's balance in a single write and returns
// the new balance string.
func (s *billingService) AddCredit(ctx context.Context, userID string, amount float64) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAddCreditFailed, err)
	}

	newBalance := domain.FormatBalance(domain.ParseAmount(user.Credits) + amount)
	if err := s.users.UpdateCredits(ctx, userID, newBalance); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAddCreditFailed, err)
	}

	metrics.CreditAdjustmentsTotal.WithLabelValues("add").Inc()
	s.log.Info().Str("uid", userID).Float64("amount", amount).Str("new_balance", newBalance).Msg("credits adjusted")
	return newBalance, nil
}

// SetBlocked sets or clears the account block flag.
func (s *billingService) SetBlocked(ctx context.Context, userID string, blocked bool) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}

	flag := domain.BlockClear
	if blocked {
		flag = domain.BlockSet
	}
	if err := s.users.UpdateBlock(ctx, userID, flag); err != nil {
		return fmt.Errorf("set block: %w", err)
	}

	metrics.CreditAdjustmentsTotal.WithLabelValues("block").Inc()
	s.log.Info().Str("uid", userID).Bool("blocked", blocked).Msg("block flag updated")
	return nil
}

// Renew extends the account expiry by months and re-activates the account.
// An empty or unparsable expiry renews from now.
func (s *billingService) Renew(ctx context.Context, userID string, months int) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	base := time.Now().UTC()
	if t, ok := domain.ParseTimestamp(user.ExpiryTime); ok && t.After(base) {
		base = t
	}
	expiry := base.AddDate(0, months, 0).Format("2006-01-02 15:04:05")

	if err := s.users.UpdateExpiry(ctx, userID, expiry, domain.ActivateActive); err != nil {
		return fmt.Errorf("renew user: %w", err)
	}

	metrics.CreditAdjustmentsTotal.WithLabelValues("renew").Inc()
	s.log.Info().Str("uid", userID).Int("months", months).Str("expiry_time", expiry).Msg("account renewed")
	return nil
}
