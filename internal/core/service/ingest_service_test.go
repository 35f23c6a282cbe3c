package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pegasus-tool/admin-api/internal/core/domain"
	"github.com/pegasus-tool/admin-api/internal/core/ports"
)

func TestIngest_Process(t *testing.T) {
	ops := newStubOperationRepo()
	svc := NewIngestService(ops, discardLogger)

	err := svc.Process(context.Background(), ports.OperationEventInput{
		OperationID:   "op1",
		OperationType: "FRP Unlock",
		UID:           "u1",
		Credit:        "0.00",
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	op := ops.ops["op1"]
	if op == nil {
		t.Fatal("operation not persisted")
	}
	if op.Credit != "0.0" {
		t.Errorf("credit = %q, want %q", op.Credit, "0.0")
	}
	if op.Status != domain.StatusPending {
		t.Errorf("status = %q, want %q", op.Status, domain.StatusPending)
	}
	if op.Time == "" {
		t.Errorf("missing time not defaulted")
	}
}

func TestIngest_GeneratesID(t *testing.T) {
	ops := newStubOperationRepo()
	svc := NewIngestService(ops, discardLogger)

	err := svc.Process(context.Background(), ports.OperationEventInput{
		OperationType: "Flash Firmware",
		UID:           "u1",
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(ops.order) != 1 {
		t.Fatalf("got %d inserts, want 1", len(ops.order))
	}
	if ops.order[0] == "" {
		t.Error("record persisted without a generated id")
	}
}

func TestIngest_InsertFailure(t *testing.T) {
	ops := newStubOperationRepo()
	ops.insertErr = errors.New("write timeout")
	svc := NewIngestService(ops, discardLogger)

	err := svc.Process(context.Background(), ports.OperationEventInput{OperationType: "x", UID: "u1"})
	if !errors.Is(err, ops.insertErr) {
		t.Fatalf("err = %v, want wrapped insert error", err)
	}
}
