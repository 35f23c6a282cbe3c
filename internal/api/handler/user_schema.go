package handler

import "github.com/pegasus-tool/admin-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type addCreditRequest struct {
	// Amount may be negative to deduct credits.
	Amount float64 `json:"amount" validate:"required"`
}

type addCreditResponse struct {
	UserID     string `json:"user_id"`
	NewBalance string `json:"new_balance"`
}

type blockRequest struct {
	Blocked *bool `json:"blocked" validate:"required"`
}

type renewRequest struct {
	Months int `json:"months" validate:"required,min=1,max=36"`
}

type statusMessageResponse struct {
	Message string `json:"message"`
}

type listUsersResponse struct {
	Data  []domain.User `json:"data"`
	Total int           `json:"total"`
}
