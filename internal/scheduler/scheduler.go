package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gamebank/internal/metrics"
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ErrNotApplied marks an action that failed before changing anything. Its
// period stays open and the next tick runs it again.
var ErrNotApplied = errors.New("scheduled job not applied")

type Action func(ctx context.Context) error

type Job struct {
	Name    string
	Trigger Trigger
	Action  Action
}

// Scheduler polls its jobs at a fixed interval and runs each job at most once
// per period. A tick that comes late still catches up on the current period.
type Scheduler struct {
	clock    Clock
	store    Store
	interval time.Duration
	metrics  metrics.Collector

	mu   sync.Mutex
	jobs []Job
	last map[string]string

	done chan struct{}
	once sync.Once
}

func New(clock Clock, store Store, interval time.Duration, collector metrics.Collector) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	if store == nil {
		store = NewMemoryStore()
	}
	if collector == nil {
		collector = metrics.NoOp{}
	}
	return &Scheduler{
		clock:    clock,
		store:    store,
		interval: interval,
		metrics:  collector,
		last:     make(map[string]string),
		done:     make(chan struct{}),
	}
}

func (s *Scheduler) Add(job Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
}

// Start runs the polling loop until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.once.Do(func() {
		zap.L().Info("Scheduler started", zap.Duration("interval", s.interval))
		go s.run(ctx)
	})
}

// Done is closed once the polling loop has exited.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping scheduler")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs every job whose period is due and has not run yet.
func (s *Scheduler) Tick(ctx context.Context) {
	s.mu.Lock()
	jobs := append([]Job(nil), s.jobs...)
	s.mu.Unlock()

	for _, job := range jobs {
		if ctx.Err() != nil {
			return
		}
		s.tickJob(ctx, job)
	}
}

func (s *Scheduler) tickJob(ctx context.Context, job Job) {
	now := s.clock.Now()
	key, due := job.Trigger.Period(now)
	if !due {
		return
	}

	s.mu.Lock()
	cached := s.last[job.Name]
	s.mu.Unlock()
	if cached == key {
		return
	}

	last, err := s.store.LastRun(ctx, job.Name)
	if err != nil {
		zap.L().Error("failed to read last scheduler run", zap.String("job", job.Name), zap.Error(err))
		return
	}
	if last == key {
		s.remember(job.Name, key)
		return
	}

	zap.L().Info("Running scheduled job", zap.String("job", job.Name), zap.String("period", key))
	runErr := s.execute(ctx, job)
	s.metrics.RecordSchedulerRun(job.Name, runErr != nil)
	if errors.Is(runErr, ErrNotApplied) {
		zap.L().Warn("scheduled job not applied, retrying next tick",
			zap.String("job", job.Name), zap.String("period", key), zap.Error(runErr))
		return
	}
	if runErr != nil {
		zap.L().Error("scheduled job failed", zap.String("job", job.Name), zap.String("period", key), zap.Error(runErr))
	}

	// The period is recorded even after a failure: the action may have been
	// partially applied and must not run twice.
	s.remember(job.Name, key)
	if err := s.store.SaveRun(ctx, job.Name, key, now); err != nil {
		zap.L().Error("failed to save scheduler run", zap.String("job", job.Name), zap.Error(err))
	}
}

func (s *Scheduler) remember(job, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last[job] = key
}

func (s *Scheduler) execute(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", job.Name, r)
		}
	}()
	return job.Action(ctx)
}
