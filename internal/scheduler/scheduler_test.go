package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type counter struct {
	mu   sync.Mutex
	runs int
	err  error
}

func (c *counter) action(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.runs++
	return c.err
}

func (c *counter) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runs
}

func at(day, hour, minute int) time.Time {
	// 2024-05-06 is a Monday.
	return time.Date(2024, 5, day, hour, minute, 0, 0, time.UTC)
}

func TestTriggers(t *testing.T) {
	tests := []struct {
		name    string
		trigger Trigger
		now     time.Time
		key     string
		due     bool
	}{
		{name: "hourly before minute", trigger: Hourly{Minute: 30}, now: at(6, 10, 29), key: "2024-05-06T10", due: false},
		{name: "hourly after minute", trigger: Hourly{Minute: 30}, now: at(6, 10, 30), key: "2024-05-06T10", due: true},
		{name: "daily before time", trigger: Daily{At: 12 * time.Hour}, now: at(6, 11, 59), key: "2024-05-06", due: false},
		{name: "daily at midnight", trigger: Daily{}, now: at(7, 0, 0), key: "2024-05-07", due: true},
		{name: "weekly on day", trigger: Weekly{Day: time.Monday, At: 12 * time.Hour}, now: at(6, 12, 0), key: "2024-05-06/Monday", due: true},
		{name: "weekly early", trigger: Weekly{Day: time.Monday, At: 12 * time.Hour}, now: at(6, 9, 0), key: "2024-05-06/Monday", due: false},
		{name: "weekly other day", trigger: Weekly{Day: time.Monday, At: 12 * time.Hour}, now: at(7, 13, 0), key: "2024-05-07/Tuesday", due: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, due := tt.trigger.Period(tt.now)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.due, due)
		})
	}
}

func TestTick_RunsOncePerPeriod(t *testing.T) {
	clock := &fakeClock{now: at(6, 0, 0)}
	s := New(clock, NewMemoryStore(), time.Minute, nil)
	interest := &counter{}
	s.Add(Job{Name: "interest", Trigger: Daily{At: time.Hour}, Action: interest.action})
	ctx := context.Background()

	s.Tick(ctx)
	assert.Equal(t, 0, interest.count(), "not due yet")

	clock.Set(at(6, 1, 0))
	s.Tick(ctx)
	s.Tick(ctx)
	clock.Set(at(6, 23, 59))
	s.Tick(ctx)
	assert.Equal(t, 1, interest.count())

	// A late tick on the next day still catches up.
	clock.Set(at(7, 18, 0))
	s.Tick(ctx)
	assert.Equal(t, 2, interest.count())
}

func TestTick_FailedRunIsNotRepeated(t *testing.T) {
	clock := &fakeClock{now: at(6, 12, 0)}
	store := NewMemoryStore()
	s := New(clock, store, time.Minute, nil)
	sweep := &counter{err: errors.New("2 accounts failed")}
	s.Add(Job{Name: "sweep", Trigger: Weekly{Day: time.Monday, At: 12 * time.Hour}, Action: sweep.action})

	s.Tick(context.Background())
	s.Tick(context.Background())

	assert.Equal(t, 1, sweep.count())
	last, err := store.LastRun(context.Background(), "sweep")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-06/Monday", last)
}

func TestTick_NotAppliedRunIsRetried(t *testing.T) {
	clock := &fakeClock{now: at(6, 0, 5)}
	store := NewMemoryStore()
	s := New(clock, store, time.Minute, nil)
	interest := &counter{err: fmt.Errorf("%w: list outstanding loans: db down", ErrNotApplied)}
	s.Add(Job{Name: "interest", Trigger: Daily{}, Action: interest.action})
	ctx := context.Background()

	s.Tick(ctx)
	last, err := store.LastRun(ctx, "interest")
	require.NoError(t, err)
	assert.Empty(t, last)

	interest.mu.Lock()
	interest.err = nil
	interest.mu.Unlock()
	clock.Set(at(6, 0, 6))
	s.Tick(ctx)
	s.Tick(ctx)

	assert.Equal(t, 2, interest.count())
	last, err = store.LastRun(ctx, "interest")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-06", last)
}

func TestTick_PanicDoesNotStopOtherJobs(t *testing.T) {
	clock := &fakeClock{now: at(6, 12, 0)}
	s := New(clock, nil, time.Minute, nil)
	other := &counter{}
	s.Add(Job{Name: "broken", Trigger: Daily{}, Action: func(context.Context) error { panic("boom") }})
	s.Add(Job{Name: "other", Trigger: Daily{}, Action: other.action})

	assert.NotPanics(t, func() { s.Tick(context.Background()) })
	assert.Equal(t, 1, other.count())
}

func TestTick_RecordedPeriodSurvivesRestart(t *testing.T) {
	clock := &fakeClock{now: at(6, 1, 0)}
	store := NewMemoryStore()
	first := &counter{}

	s := New(clock, store, time.Minute, nil)
	s.Add(Job{Name: "interest", Trigger: Daily{}, Action: first.action})
	s.Tick(context.Background())

	restarted := New(clock, store, time.Minute, nil)
	second := &counter{}
	restarted.Add(Job{Name: "interest", Trigger: Daily{}, Action: second.action})
	restarted.Tick(context.Background())

	assert.Equal(t, 1, first.count())
	assert.Equal(t, 0, second.count())
}

type failingStore struct{ MemoryStore }

func (*failingStore) LastRun(context.Context, string) (string, error) {
	return "", errors.New("db down")
}

func TestTick_UnreadableStoreSkipsJob(t *testing.T) {
	clock := &fakeClock{now: at(6, 1, 0)}
	s := New(clock, &failingStore{}, time.Minute, nil)
	job := &counter{}
	s.Add(Job{Name: "interest", Trigger: Daily{}, Action: job.action})

	s.Tick(context.Background())

	assert.Equal(t, 0, job.count())
}

func TestStart_StopsOnCancel(t *testing.T) {
	clock := &fakeClock{now: at(6, 1, 0)}
	s := New(clock, nil, 10*time.Millisecond, nil)
	job := &counter{}
	s.Add(Job{Name: "interest", Trigger: Daily{}, Action: job.action})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	require.Eventually(t, func() bool { return job.count() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.Equal(t, 1, job.count())
}
