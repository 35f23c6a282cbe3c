package domain

import "time"

// Operation statuses written by this service. The backend also carries
// free-text statuses set by the device tooling; those are preserved verbatim.
const (
	StatusPending = "Pending"
	StatusSuccess = "Success"
	StatusFailed  = "Failed"
)

// Operation is a logged device-service job (unlock/flash) billed against a
// user's credit balance. Diagnostic fields are carried for display only.
type Operation struct {
	OperationID   string `json:"operation_id"`
	OperationType string `json:"operation_type"`
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
	UID           string `json:"uid"`
	HWID          string `json:"hwid"`
	LogOperation  string `json:"log_operation"`
}

// NormalizeOperation applies per-field defaults and coerces the credit string
// to the canonical "0.0" shape. A missing timestamp defaults to the current
// time in RFC 3339 so the record still sorts and tallies.
func NormalizeOperation(op Operation) Operation {
	op.Credit = NormalizeCredit(op.Credit)
	if op.Time == "" {
		op.Time = time.Now().UTC().Format(time.RFC3339)
	}
	if op.Status == "" {
		op.Status = StatusPending
	}
	return op
}
