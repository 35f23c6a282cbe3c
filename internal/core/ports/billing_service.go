package ports

import "context"

// RefundResult reports the outcome of a successful refund.
type RefundResult struct {
	OperationID string  `json:"operation_id"`
	UserID      string  `json:"user_id"`
	Amount      float64 `json:"amount"`
	NewBalance  string  `json:"new_balance"`
}

// BillingService owns every credit-balance mutation: the refund workflow and
// its simpler siblings. None of the operations are transactional across
// writes; see Refund for the documented failure semantics.
type BillingService interface {
	// Refund restores the operation's charged credit to the owning user and
	// marks the operation failed with a zero credit. The two writes are
	// sequential, not atomic: a failure after the balance write leaves the
	// user refunded but the operation unmarked, and the caller must re-run
	// the refund (or reconcile manually) to converge.
	Refund(ctx context.Context, operationID string) (*RefundResult, error)

	// AddCredit adds amount (positive or negative) to the user's balance in a
	// single write. Never partially applies.
	AddCredit(ctx context.Context, userID string, amount float64) (string, error)

	// SetBlocked sets or clears the account block flag.
	SetBlocked(ctx context.Context, userID string, blocked bool) error

	// Renew extends the account expiry by the given number of months and
	// re-activates the account.
	Renew(ctx context.Context, userID string, months int) error
}
