package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pegasus-tool/admin-api/internal/api/metrics"
	"github.com/pegasus-tool/admin-api/internal/core/domain"
	"github.com/pegasus-tool/admin-api/internal/core/ports"
)

type ingestService struct {
	operations ports.OperationRepository
	log        zerolog.Logger
}

// NewIngestService returns an IngestService that persists operation records
// reported by device tooling.
func NewIngestService(operations ports.OperationRepository, log zerolog.Logger) ports.IngestService {
	return &ingestService{operations: operations, log: log}
}

// Process normalizes and persists one operation record. Records without an id
// get a generated one so the refund workflow can address them later.
func (s *ingestService) Process(ctx context.Context, in ports.OperationEventInput) error {
	op := domain.NormalizeOperation(domain.Operation{
		OperationID:   in.OperationID,
		OperationType: in.OperationType,
		PhoneSN:       in.PhoneSN,
		Brand:         in.Brand,
		Model:         in.Model,
		IMEI:          in.IMEI,
		Username:      in.Username,
		Credit:        in.Credit,
		Time:          in.Time,
		Status:        in.Status,
		Android:       in.Android,
		Baseband:      in.Baseband,
		Carrier:       in.Carrier,
		SecurityPatch: in.SecurityPatch,
		UID:           in.UID,
		HWID:          in.HWID,
		LogOperation:  in.LogOperation,
	})
	if op.OperationID == "" {
		op.OperationID = uuid.NewString()
	}

	if err := s.operations.Insert(ctx, &op); err != nil {
		metrics.IngestErrorsTotal.Inc()
		return fmt.Errorf("ingest operation: %w", err)
	}

	opType := op.OperationType
	if opType == "" {
		opType = "unknown"
	}
	metrics.OperationsIngestedTotal.WithLabelValues(opType).Inc()
	s.log.Info().
		Str("operation_id", op.OperationID).
		Str("operation_type", op.OperationType).
		Str("uid", op.UID).
		Msg("operation ingested")
	return nil
}
