package handler

import (
	"github.com/pegasus-tool/admin-api/internal/core/domain"
	"github.com/pegasus-tool/admin-api/internal/core/ports"
)

// --- Request / Response types ---

type listOperationsResponse struct {
	Data  []domain.Operation `json:"data"`
	Total int                `json:"total"`
}

type refundResponse struct {
	OperationID string  `json:"operation_id"`
	UserID      string  `json:"user_id"`
	Amount      float64 `json:"amount"`
	NewBalance  string  `json:"new_balance"`
}

// operationEventRequest carries one operation record reported by the device
// tooling. Most fields are optional diagnostics; uid ties the record to the
// billed account.
type operationEventRequest struct {
	OperationID   string `json:"operation_id"`
	OperationType string `json:"operation_type" validate:"required"`
	PhoneSN       string `json:"phone_sn"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	IMEI          string `json:"imei"`
	Username      string `json:"username"`
	Credit        string `json:"credit"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	Android       string `json:"android"`
	Baseband      string `json:"baseband"`
	Carrier       string `json:"carrier"`
	SecurityPatch string `json:"security_patch"`
	UID           string `json:"uid" validate:"required"`
	HWID          string `json:"hwid"`
	LogOperation  string `json:"log_operation"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

// toEventInput maps the HTTP request to the service DTO.
func toEventInput(r operationEventRequest) ports.OperationEventInput {
	return ports.OperationEventInput{
		OperationID:   r.OperationID,
		OperationType: r.OperationType,
		PhoneSN:       r.PhoneSN,
		Brand:         r.Brand,
		Model:         r.Model,
		IMEI:          r.IMEI,
		Username:      r.Username,
		Credit:        r.Credit,
		Time:          r.Time,
		Status:        r.Status,
		Android:       r.Android,
		Baseband:      r.Baseband,
		Carrier:       r.Carrier,
		SecurityPatch: r.SecurityPatch,
		UID:           r.UID,
		HWID:          r.HWID,
		LogOperation:  r.LogOperation,
	}
}
