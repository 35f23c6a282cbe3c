package ports

import "context"

// OperationEventInput is the DTO passed from the transport layer to the
// ingest service for operation records reported by device tooling.
type OperationEventInput struct {
	OperationID   string
	OperationType string
	PhoneSN       string
	Brand         string
	Model         string
	IMEI          string
	Username      string
	Credit        string
	Time          string
	Status        string
	Android       string
	Baseband      string
	Carrier       string
	SecurityPatch string
	UID           string
	HWID          string
	LogOperation  string
}

// IngestService persists incoming operation records.
type IngestService interface {
	Process(ctx context.Context, event OperationEventInput) error
}
