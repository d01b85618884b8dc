package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopRunsFrames(t *testing.T) {
	var frames atomic.Int64
	l := NewLoop(nil, 2*time.Millisecond, func(time.Time) { frames.Add(1) })
	l.Start()
	defer l.Stop()

	require.Eventually(t, func() bool { return frames.Load() >= 5 }, time.Second, time.Millisecond)
	assert.True(t, l.Running())
	assert.GreaterOrEqual(t, l.Frames(), uint64(5))
}

func TestLoopStopCancelsFrames(t *testing.T) {
	var frames atomic.Int64
	l := NewLoop(nil, time.Millisecond, func(time.Time) { frames.Add(1) })
	l.Start()
	require.Eventually(t, func() bool { return frames.Load() > 0 }, time.Second, time.Millisecond)

	l.Stop()
	after := frames.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, frames.Load(), "no frame may fire after Stop returns")
	assert.False(t, l.Running())

	// Idempotent, and a stopped loop never restarts
	l.Stop()
	l.Start()
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, after, frames.Load())
	assert.False(t, l.Post(func() {}))

	select {
	case <-l.Done():
	default:
		t.Fatal("Done must be closed after Stop")
	}
}

func TestLoopMessagesRunOnLoopGoroutine(t *testing.T) {
	// Counter is unsynchronized on purpose, the race detector flags any cross-goroutine access
	counter := 0
	done := make(chan int, 1)

	l := NewLoop(nil, time.Millisecond, func(time.Time) { counter++ })
	l.Start()
	defer l.Stop()

	for i := 0; i < 50; i++ {
		require.True(t, l.Post(func() { counter += 1000 }))
	}
	require.True(t, l.Post(func() { done <- counter }))

	select {
	case got := <-done:
		assert.GreaterOrEqual(t, got, 50000)
	case <-time.After(time.Second):
		t.Fatal("posted messages not executed")
	}
}

func TestLoopPostBeforeStart(t *testing.T) {
	ran := make(chan struct{})
	l := NewLoop(nil, time.Millisecond, nil)
	require.True(t, l.Post(func() { close(ran) }))

	l.Start()
	defer l.Stop()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("message queued before Start never ran")
	}
}

func TestLoopSetAnimating(t *testing.T) {
	var frames atomic.Int64
	l := NewLoop(nil, time.Millisecond, func(time.Time) { frames.Add(1) })
	l.SetAnimating(false)
	assert.False(t, l.Animating())

	l.Start()
	defer l.Stop()

	handled := make(chan struct{})
	require.True(t, l.Post(func() { close(handled) }))
	<-handled
	time.Sleep(15 * time.Millisecond)
	assert.Equal(t, int64(0), frames.Load(), "paused loop must not run frames")

	l.SetAnimating(true)
	require.Eventually(t, func() bool { return frames.Load() > 0 }, time.Second, time.Millisecond)
}

func TestLoopUsesClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewMockTimeProvider(start)
	stamps := make(chan time.Time, 1)

	l := NewLoop(clock, time.Millisecond, func(now time.Time) {
		select {
		case stamps <- now:
		default:
		}
	})
	l.Start()
	defer l.Stop()

	select {
	case got := <-stamps:
		assert.Equal(t, start, got)
	case <-time.After(time.Second):
		t.Fatal("no frame")
	}
}
