package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard/internal/reminder"
)

type countingRunner struct {
	calls    atomic.Int32
	err      error
	deadline atomic.Bool
}

func (r *countingRunner) Run(ctx context.Context) (*reminder.Summary, error) {
	r.calls.Add(1)
	_, ok := ctx.Deadline()
	r.deadline.Store(ok)
	if r.err != nil {
		return nil, r.err
	}
	return &reminder.Summary{RunID: "run"}, nil
}

func TestNew_InvalidSchedule(t *testing.T) {
	_, err := New(&countingRunner{}, "not a schedule", nil, 0)
	assert.Error(t, err)
}

func TestNew_DefaultScheduleRunsAtMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	s, err := New(&countingRunner{}, "", loc, 0)
	require.NoError(t, err)

	s.Start()
	defer func() { require.NoError(t, s.Stop(context.Background())) }()

	next := s.Next().In(loc)
	assert.Equal(t, 0, next.Hour())
	assert.Equal(t, 0, next.Minute())
	assert.True(t, next.After(time.Now()))
}

func TestTick(t *testing.T) {
	runner := &countingRunner{}
	s, err := New(runner, "@every 1h", nil, time.Minute)
	require.NoError(t, err)

	s.tick()
	assert.Equal(t, int32(1), runner.calls.Load())
	assert.True(t, runner.deadline.Load(), "runs are bounded by the timeout")

	runner.err = reminder.ErrRunInProgress
	s.tick()
	runner.err = errors.New("boom")
	s.tick()
	assert.Equal(t, int32(3), runner.calls.Load())
}

func TestScheduler_FiresRunner(t *testing.T) {
	runner := &countingRunner{}
	s, err := New(runner, "@every 1s", nil, 0)
	require.NoError(t, err)

	s.Start()
	assert.Eventually(t, func() bool { return runner.calls.Load() > 0 }, 5*time.Second, 50*time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))
}
