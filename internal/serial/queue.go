package serial

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gamebank/internal/metrics"
)

var (
	ErrQueueClosed  = errors.New("serial queue closed")
	ErrTaskPanicked = errors.New("unit of work panicked")
)

type QueueI interface {
	Do(ctx context.Context, task Task) error
}

type Task func(ctx context.Context) error

type job struct {
	ctx      context.Context
	task     Task
	done     chan error
	enqueued time.Time
}

// Queue is an unbounded multi-producer, single-consumer FIFO. One worker
// executes every task to completion before dequeuing the next one, so tasks
// submitted to the same Queue never run concurrently.
type Queue struct {
	name    string
	metrics metrics.Collector

	mu     sync.Mutex
	jobs   []*job
	closed bool

	wake chan struct{}
	done chan struct{}
	once sync.Once
}

func New(name string, collector metrics.Collector) *Queue {
	if collector == nil {
		collector = metrics.NoOp{}
	}
	return &Queue{
		name:    name,
		metrics: collector,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// Start launches the worker. Cancelling ctx stops it between tasks; tasks still
// waiting at that point fail with ErrQueueClosed.
func (q *Queue) Start(ctx context.Context) {
	q.once.Do(func() {
		zap.L().Info("serial queue started", zap.String("queue", q.name))
		go q.run(ctx)
	})
}

// Done is closed once the worker has exited.
func (q *Queue) Done() <-chan struct{} {
	return q.done
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}

// Do enqueues task and waits for its result. If ctx is cancelled first, Do
// returns ctx.Err() while the task stays queued and still runs.
func (q *Queue) Do(ctx context.Context, task Task) error {
	j := &job{
		ctx:      context.WithoutCancel(ctx),
		task:     task,
		done:     make(chan error, 1),
		enqueued: time.Now(),
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	q.jobs = append(q.jobs, j)
	depth := len(q.jobs)
	q.mu.Unlock()

	q.metrics.RecordQueueDepth(q.name, depth)
	select {
	case q.wake <- struct{}{}:
	default:
	}

	select {
	case err := <-j.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *Queue) run(ctx context.Context) {
	defer close(q.done)
	for {
		select {
		case <-ctx.Done():
			q.shutdown()
			return
		default:
		}

		j := q.next()
		if j == nil {
			select {
			case <-ctx.Done():
				q.shutdown()
				return
			case <-q.wake:
			}
			continue
		}
		q.execute(j)
	}
}

func (q *Queue) next() *job {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.jobs) == 0 {
		return nil
	}
	j := q.jobs[0]
	q.jobs[0] = nil
	q.jobs = q.jobs[1:]
	q.metrics.RecordQueueDepth(q.name, len(q.jobs))
	return j
}

func (q *Queue) execute(j *job) {
	q.metrics.RecordQueueWait(q.name, time.Since(j.enqueued))
	start := time.Now()
	err := q.safeRun(j)
	q.metrics.RecordQueueRun(q.name, err != nil, time.Since(start))
	j.done <- err
}

func (q *Queue) safeRun(j *job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("unit of work panicked", zap.String("queue", q.name), zap.Any("panic", r))
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
		}
	}()
	return j.task(j.ctx)
}

func (q *Queue) shutdown() {
	q.mu.Lock()
	q.closed = true
	pending := q.jobs
	q.jobs = nil
	q.mu.Unlock()

	for _, j := range pending {
		j.done <- ErrQueueClosed
	}
	zap.L().Info("serial queue stopped", zap.String("queue", q.name), zap.Int("dropped", len(pending)))
}
