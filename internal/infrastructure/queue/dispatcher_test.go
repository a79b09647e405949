package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskden/todo-api/internal/core/domain"
	"github.com/taskden/todo-api/internal/core/ports"
)

type captureService struct {
	mu     sync.Mutex
	inputs []ports.ActivityInput
	done   chan struct{}
	want   int
}

func newCaptureService(want int) *captureService {
	return &captureService{done: make(chan struct{}), want: want}
}

func (s *captureService) Process(_ context.Context, input ports.ActivityInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs = append(s.inputs, input)
	if len(s.inputs) == s.want {
		close(s.done)
	}
	return nil
}

func (s *captureService) Recent(_ context.Context, _ int) ([]domain.Activity, error) {
	return nil, nil
}

func (s *captureService) wait(t *testing.T) []ports.ActivityInput {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %d entries", s.want)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.ActivityInput(nil), s.inputs...)
}

func TestShardIndex_Deterministic(t *testing.T) {
	d := NewDispatcher(4, newCaptureService(0), zerolog.Nop())

	for _, id := range []string{"", "list-1", "list-2", "9d3f2f60"} {
		first := d.shardIndex(id)
		if first < 0 || first >= 4 {
			t.Fatalf("index out of range: %d", first)
		}
		if second := d.shardIndex(id); second != first {
			t.Fatalf("shard for %q not stable: %d vs %d", id, first, second)
		}
	}
}

func TestDispatcher_PerListOrdering(t *testing.T) {
	const n = 50
	svc := newCaptureService(n)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// All entries for one list hash to one worker, so arrival order holds.
	for i := 0; i < n; i++ {
		d.Record(ports.ActivityInput{ListID: "list-1", Detail: fmt.Sprintf("%d", i)})
	}

	inputs := svc.wait(t)
	for i, in := range inputs {
		if in.Detail != fmt.Sprintf("%d", i) {
			t.Fatalf("entry %d out of order: got %s", i, in.Detail)
		}
	}
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	// Workers never started: the buffer fills, then Record must not block.
	d := NewDispatcher(1, newCaptureService(0), zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Record(ports.ActivityInput{ListID: "list-1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Record blocked on a full queue")
	}

	if got := len(d.workers[0]); got != channelBuffer {
		t.Fatalf("expected %d buffered entries, got %d", channelBuffer, got)
	}
}
