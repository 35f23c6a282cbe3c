package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated    = errors.New("missing or invalid credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrOperationNotFound  = errors.New("operation not found")
	ErrAdminNotFound      = errors.New("admin account not found")
	ErrAdminExists        = errors.New("admin account already exists")
	ErrAddCreditFailed    = errors.New("add credit failed")
	ErrRefundDuplicate    = errors.New("operation already refunded")
	ErrRefundInvalid      = errors.New("operation is not refundable")
	ErrForbidden          = errors.New("access forbidden")
)

// Refund failure reasons, one per failing step of the workflow.
const (
	RefundReasonLookup          = "credit lookup"
	RefundReasonBalanceUpdate   = "balance update"
	RefundReasonOperationUpdate = "operation update"
)

// FetchError reports a backend read failure, tagged with the entity that
// failed ("users" or "operations").
type FetchError struct {
	Entity string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Entity, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// RefundError reports a refund workflow failure, tagged with the step that
// failed. A RefundReasonOperationUpdate failure means the balance was already
// credited; see BillingService.Refund for the recovery contract.
type RefundError struct {
	Reason string
	Err    error
}

func (e *RefundError) Error() string {
	return fmt.Sprintf("refund failed (%s): %v", e.Reason, e.Err)
}

func (e *RefundError) Unwrap() error { return e.Err }
