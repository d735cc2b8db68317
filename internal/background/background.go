// Package background runs fire-and-forget persistence work on a bounded
// worker pool. Failures are logged and counted, never surfaced to callers.
package background

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/lmdrew96/chaoslimba/internal/metrics"
)

// Task is a unit of deferred work identified by operation name for
// metrics attribution.
type Task struct {
	Operation string
	Run       func(ctx context.Context) error
}

// Submitter accepts tasks for asynchronous execution. Submit never blocks
// and never returns an error; when the queue is full the task is dropped
// and counted.
type Submitter interface {
	Submit(task Task)
}

// Pool executes tasks on a fixed set of workers over a bounded queue.
type Pool struct {
	queue   chan Task
	logger  *slog.Logger
	metrics *metrics.Metrics
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewPool starts workers draining a queue of the given size. taskTimeout
// bounds each task's context.
func NewPool(queueSize, workers int, taskTimeout time.Duration, logger *slog.Logger, m *metrics.Metrics) *Pool {
	if queueSize < 1 {
		queueSize = 1
	}
	if workers < 1 {
		workers = 1
	}
	p := &Pool{
		queue:   make(chan Task, queueSize),
		logger:  logger,
		metrics: m,
		timeout: taskTimeout,
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

// Submit enqueues a task. If the pool is closed or the queue is full the
// task is dropped with a log line and a swallowed-write count.
func (p *Pool) Submit(task Task) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.drop(task, "pool closed")
		return
	}

	select {
	case p.queue <- task:
	default:
		p.drop(task, "queue full")
	}
}

// Close stops accepting tasks, drains the queue, and waits for workers.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.queue {
		p.run(task)
	}
}

func (p *Pool) run(task Task) {
	ctx := context.Background()
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := task.Run(ctx); err != nil {
		p.metrics.SwallowedWrites.WithLabelValues(task.Operation).Inc()
		p.logger.Warn("background write failed",
			"operation", task.Operation,
			"error", err)
	}
}

func (p *Pool) drop(task Task, reason string) {
	p.metrics.SwallowedWrites.WithLabelValues(task.Operation).Inc()
	p.logger.Warn("background task dropped",
		"operation", task.Operation,
		"reason", reason)
}

// Sync is a Submitter that runs tasks inline; failures still only log.
// Useful in tests and CLI paths where ordering matters.
type Sync struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

func (s Sync) Submit(task Task) {
	if err := task.Run(context.Background()); err != nil {
		s.Metrics.SwallowedWrites.WithLabelValues(task.Operation).Inc()
		s.Logger.Warn("background write failed",
			"operation", task.Operation,
			"error", err)
	}
}
