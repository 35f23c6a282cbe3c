package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pegasus-tool/admin-api/internal/core/ports"
)

type recordingIngest struct {
	mu     sync.Mutex
	events []ports.OperationEventInput
	done   chan struct{}
	want   int
}

func newRecordingIngest(want int) *recordingIngest {
	return &recordingIngest{done: make(chan struct{}), want: want}
}

func (r *recordingIngest) Process(_ context.Context, event ports.OperationEventInput) error {
	r.mu.Lock()
	r.events = append(r.events, event)
	n := len(r.events)
	r.mu.Unlock()
	if n == r.want {
		close(r.done)
	}
	return nil
}

func (r *recordingIngest) wait(t *testing.T) []ports.OperationEventInput {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %d events", r.want)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ports.OperationEventInput, len(r.events))
	copy(out, r.events)
	return out
}

func TestDispatcher_ProcessesAll(t *testing.T) {
	ingest := newRecordingIngest(3)
	d := NewDispatcher(2, ingest, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.EnqueueBatch([]ports.OperationEventInput{
		{OperationID: "a", UID: "u1"},
		{OperationID: "b", UID: "u2"},
		{OperationID: "c", UID: "u3"},
	})

	got := ingest.wait(t)
	if len(got) != 3 {
		t.Fatalf("processed %d events, want 3", len(got))
	}
}

func TestDispatcher_PerUserOrdering(t *testing.T) {
	ingest := newRecordingIngest(4)
	d := NewDispatcher(4, ingest, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for _, id := range []string{"first", "second", "third", "fourth"} {
		d.Enqueue(ports.OperationEventInput{OperationID: id, UID: "u1"})
	}

	got := ingest.wait(t)
	want := []string{"first", "second", "third", "fourth"}
	for i, id := range want {
		if got[i].OperationID != id {
			t.Fatalf("position %d = %q, want %q (same-user events reordered)", i, got[i].OperationID, id)
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, nil, zerolog.Nop())
	for _, uid := range []string{"", "u1", "user-with-long-id-0123456789"} {
		a := d.shardIndex(uid)
		b := d.shardIndex(uid)
		if a != b {
			t.Errorf("shardIndex(%q) unstable: %d vs %d", uid, a, b)
		}
		if a < 0 || a >= 8 {
			t.Errorf("shardIndex(%q) = %d, out of range", uid, a)
		}
	}
}

func TestNewDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, nil, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Errorf("workers = %d, want %d", len(d.workers), defaultWorkers)
	}
}
