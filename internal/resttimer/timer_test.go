package resttimer_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/resttimer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTimer_Elapses(t *testing.T) {
	var timer resttimer.Timer
	var calls atomic.Int32
	timer.Start(20*time.Millisecond, func() { calls.Add(1) })

	assert.Greater(t, timer.Remaining(), time.Duration(0))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, timer.Wait(ctx))

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Zero(t, timer.Remaining())
	assert.False(t, timer.Cancel())
	assert.False(t, timer.Extend(time.Second))
}

func TestTimer_Cancel(t *testing.T) {
	var timer resttimer.Timer
	var calls atomic.Int32
	timer.Start(50*time.Millisecond, func() { calls.Add(1) })

	require.True(t, timer.Cancel())
	assert.ErrorIs(t, timer.Wait(context.Background()), resttimer.ErrCanceled)

	select {
	case <-timer.Done():
	default:
		t.Fatal("Done should be closed after Cancel")
	}

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, calls.Load(), "callback must not run after Cancel")
}

func TestTimer_RestartCancelsPrevious(t *testing.T) {
	var timer resttimer.Timer
	var first, second atomic.Int32
	timer.Start(time.Hour, func() { first.Add(1) })
	previous := timer.Done()

	timer.Start(10*time.Millisecond, func() { second.Add(1) })

	select {
	case <-previous:
	default:
		t.Fatal("previous period should be closed")
	}
	require.NoError(t, timer.Wait(context.Background()))
	assert.Eventually(t, func() bool { return second.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Zero(t, first.Load())
}

func TestTimer_Extend(t *testing.T) {
	var timer resttimer.Timer
	timer.Start(30*time.Millisecond, nil)
	require.True(t, timer.Extend(time.Hour))

	assert.Greater(t, timer.Remaining(), 59*time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, timer.Wait(ctx), context.DeadlineExceeded)

	require.True(t, timer.Extend(-time.Hour))
	require.NoError(t, timer.Wait(context.Background()))
}

func TestTimer_NotStarted(t *testing.T) {
	var timer resttimer.Timer
	assert.Nil(t, timer.Done())
	assert.Zero(t, timer.Remaining())
	assert.False(t, timer.Cancel())
	assert.ErrorIs(t, timer.Wait(context.Background()), resttimer.ErrNotStarted)
}
