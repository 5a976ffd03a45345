package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(slog.Default())
	assert.False(t, s.IsRunning())

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())
	require.NoError(t, s.Start(context.Background()), "second start is a no-op")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.False(t, s.IsRunning())
	require.NoError(t, s.Stop(ctx), "second stop is a no-op")
}

func TestScheduler_AddIntervalTask(t *testing.T) {
	s := NewScheduler(slog.Default())
	noop := func(context.Context) error { return nil }

	require.NoError(t, s.AddIntervalTask("contact.sweep", 5*time.Minute, noop))
	require.NoError(t, s.AddIntervalTask("other", time.Minute, noop))
	require.NoError(t, s.AddIntervalTask("contact.sweep", time.Minute, noop), "re-adding replaces")

	tasks := s.ListTasks()
	sort.Strings(tasks)
	assert.Equal(t, []string{"contact.sweep", "other"}, tasks)
	assert.Len(t, s.cron.Entries(), 2)

	s.RemoveTask("other")
	assert.Equal(t, []string{"contact.sweep"}, s.ListTasks())
	s.RemoveTask("missing")
}

func TestScheduler_AddIntervalTask_InvalidInterval(t *testing.T) {
	s := NewScheduler(slog.Default())
	err := s.AddIntervalTask("broken", -time.Second, func(context.Context) error { return nil })
	assert.Error(t, err)
	assert.Empty(t, s.ListTasks())
}

func TestScheduler_RunNow(t *testing.T) {
	s := NewScheduler(slog.Default())

	var runs atomic.Int32
	require.NoError(t, s.AddIntervalTask("count", time.Hour, func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline, "tasks run with a deadline")
		runs.Add(1)
		return nil
	}))
	require.NoError(t, s.AddIntervalTask("failing", time.Hour, func(context.Context) error {
		return errors.New("boom")
	}))

	assert.True(t, s.RunNow("count"))
	assert.True(t, s.RunNow("failing"), "task errors are logged, not propagated")
	assert.False(t, s.RunNow("unknown"))
	assert.Equal(t, int32(1), runs.Load())
}
