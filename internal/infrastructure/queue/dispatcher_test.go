package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/starcast/casting-api/internal/core/domain"
)

type stubAuditRepo struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (r *stubAuditRepo) Insert(_ context.Context, event *domain.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	return nil
}

func (r *stubAuditRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	repo := &stubAuditRepo{}
	d := NewDispatcher(2, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Record(domain.AuditEvent{
			ID:        "evt",
			Action:    domain.AuditProfileUpdated,
			SubjectID: "user_1",
		})
	}

	waitFor(t, func() bool { return repo.count() == 10 })
}

func TestDispatcher_ShardingIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, &stubAuditRepo{}, zerolog.Nop())

	first := d.shardIndex("user_42")
	for i := 0; i < 100; i++ {
		if got := d.shardIndex("user_42"); got != first {
			t.Fatalf("shard index changed: %d vs %d", got, first)
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &stubAuditRepo{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}

// Record must never block the caller, even when no worker is draining the
// channel and the buffer is full.
func TestDispatcher_DropsWhenFull(t *testing.T) {
	repo := &stubAuditRepo{}
	d := NewDispatcher(1, repo, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < channelBuffer+10; i++ {
			d.Record(domain.AuditEvent{SubjectID: "user_1"})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Record blocked on a full channel")
	}
	if len(d.workers[0]) != channelBuffer {
		t.Fatalf("expected a full buffer of %d, got %d", channelBuffer, len(d.workers[0]))
	}
}

func TestDispatcher_StopsOnContextCancel(t *testing.T) {
	repo := &stubAuditRepo{}
	d := NewDispatcher(1, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	d.Record(domain.AuditEvent{SubjectID: "user_1"})
	waitFor(t, func() bool { return repo.count() == 1 })

	cancel()
	// Give the worker a moment to observe cancellation, then verify no
	// further events are processed.
	time.Sleep(20 * time.Millisecond)
	d.Record(domain.AuditEvent{SubjectID: "user_1"})
	time.Sleep(50 * time.Millisecond)
	if repo.count() != 1 {
		t.Fatalf("expected no delivery after cancel, got %d", repo.count())
	}
}
