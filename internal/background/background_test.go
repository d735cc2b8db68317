package background

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lmdrew96/chaoslimba/internal/metrics"
)

func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSubmitRunsTask(t *testing.T) {
	p := NewPool(4, 2, time.Second, nopLogger(), metrics.NewNop())
	defer p.Close()

	var ran atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)
	p.Submit(Task{
		Operation: "test",
		Run: func(ctx context.Context) error {
			ran.Store(true)
			wg.Done()
			return nil
		},
	})
	wg.Wait()

	if !ran.Load() {
		t.Fatal("task did not run")
	}
}

func TestFailingTaskDoesNotPropagate(t *testing.T) {
	p := NewPool(4, 1, time.Second, nopLogger(), metrics.NewNop())

	p.Submit(Task{
		Operation: "exposure_append",
		Run: func(ctx context.Context) error {
			return errors.New("disk full")
		},
	})
	p.Close()
}

func TestCloseDrainsQueue(t *testing.T) {
	p := NewPool(16, 1, time.Second, nopLogger(), metrics.NewNop())

	var count atomic.Int32
	for i := 0; i < 10; i++ {
		p.Submit(Task{
			Operation: "test",
			Run: func(ctx context.Context) error {
				count.Add(1)
				return nil
			},
		})
	}
	p.Close()

	if got := count.Load(); got != 10 {
		t.Fatalf("ran %d tasks, want 10", got)
	}
}

func TestSubmitAfterCloseDrops(t *testing.T) {
	p := NewPool(4, 1, time.Second, nopLogger(), metrics.NewNop())
	p.Close()

	p.Submit(Task{
		Operation: "test",
		Run: func(ctx context.Context) error {
			t.Error("task ran after close")
			return nil
		},
	})
}

func TestQueueFullDropsRatherThanBlocks(t *testing.T) {
	p := NewPool(1, 1, time.Second, nopLogger(), metrics.NewNop())
	defer p.Close()

	block := make(chan struct{})
	p.Submit(Task{
		Operation: "blocker",
		Run: func(ctx context.Context) error {
			<-block
			return nil
		},
	})

	done := make(chan struct{})
	go func() {
		for i := 0; i < 20; i++ {
			p.Submit(Task{Operation: "filler", Run: func(ctx context.Context) error { return nil }})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Submit blocked on a full queue")
	}
	close(block)
}

func TestSyncSubmitter(t *testing.T) {
	s := Sync{Logger: nopLogger(), Metrics: metrics.NewNop()}

	ran := false
	s.Submit(Task{
		Operation: "test",
		Run: func(ctx context.Context) error {
			ran = true
			return nil
		},
	})
	if !ran {
		t.Fatal("sync task did not run")
	}

	s.Submit(Task{
		Operation: "test",
		Run: func(ctx context.Context) error {
			return errors.New("boom")
		},
	})
}
