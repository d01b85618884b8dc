package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// inboxSize bounds queued messages; producers block while it is full
const inboxSize = 128

// Loop is a cancellable frame scheduler
// One goroutine runs the frame callback on a fixed interval and executes posted
// messages between frames, so everything they touch is confined to that goroutine
// After Stop returns no frame callback or message runs again
type Loop struct {
	clock    TimeProvider
	interval time.Duration
	frame    func(now time.Time)

	inbox chan func()

	// animating gates the frame ticker, messages are processed regardless
	animating atomic.Bool

	frameCount atomic.Uint64

	mu       sync.Mutex
	stopChan chan struct{}
	stopped  bool
	wg       sync.WaitGroup
	running  bool
}

// NewLoop creates a stopped loop calling frame every interval with clock timestamps
func NewLoop(clock TimeProvider, interval time.Duration, frame func(now time.Time)) *Loop {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	l := &Loop{
		clock:    clock,
		interval: interval,
		frame:    frame,
		inbox:    make(chan func(), inboxSize),
		stopChan: make(chan struct{}),
	}
	l.animating.Store(true)
	return l
}

// Start launches the loop goroutine, no-op if already started or stopped
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped || l.running {
		return
	}
	l.running = true
	l.wg.Add(1)
	Go(l.run)
}

// Stop halts the loop and waits for the in-flight callback to return
// Safe to call more than once and from any goroutine except the loop itself
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		l.wg.Wait()
		return
	}
	l.stopped = true
	close(l.stopChan)
	l.mu.Unlock()

	l.wg.Wait()
}

// Running reports whether the loop goroutine was started and not stopped
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running && !l.stopped
}

// Post queues fn for execution on the loop goroutine
// Returns false when the loop is stopped; a message racing Stop may be dropped
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stopChan:
		return false
	default:
	}
	select {
	case l.inbox <- fn:
		return true
	case <-l.stopChan:
		return false
	}
}

// SetAnimating enables or disables frame callbacks without stopping message handling
func (l *Loop) SetAnimating(on bool) {
	if l.animating.Swap(on) == on {
		return
	}
	// Wake the loop so it re-arms or drops the frame timer
	select {
	case l.inbox <- func() {}:
	default:
	}
}

// Animating reports whether frame callbacks are enabled
func (l *Loop) Animating() bool {
	return l.animating.Load()
}

// Frames returns the number of frame callbacks run so far
func (l *Loop) Frames() uint64 {
	return l.frameCount.Load()
}

// Done is closed once Stop has been called
func (l *Loop) Done() <-chan struct{} {
	return l.stopChan
}

func (l *Loop) run() {
	defer l.wg.Done()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	var tick <-chan time.Time
	var deadline time.Time

	// arm re-evaluates the animating flag after every wake-up
	arm := func() {
		if !l.animating.Load() {
			if tick != nil {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				tick = nil
			}
			return
		}
		if tick == nil {
			deadline = time.Now().Add(l.interval)
			timer.Reset(l.interval)
			tick = timer.C
		}
	}
	arm()

	for {
		select {
		case <-l.stopChan:
			return

		case fn := <-l.inbox:
			fn()
			arm()

		case <-tick:
			select {
			case <-l.stopChan:
				return
			default:
			}

			l.frameCount.Add(1)
			if l.frame != nil {
				l.frame(l.clock.Now())
			}

			// Fixed cadence with drift correction, skip ahead when too far behind
			deadline = deadline.Add(l.interval)
			now := time.Now()
			if now.Sub(deadline) > l.interval*2 {
				deadline = now.Add(l.interval)
			}
			wait := deadline.Sub(now)
			if wait < 0 {
				wait = 0
			}
			tick = nil
			if l.animating.Load() {
				timer.Reset(wait)
				tick = timer.C
			}
		}
	}
}
