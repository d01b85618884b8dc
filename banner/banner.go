package banner

import (
	"errors"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/flow-banner/engine"
	"github.com/lixenwraith/flow-banner/flow"
	"github.com/lixenwraith/flow-banner/render"
)

var (
	// ErrNoScreen is returned by New without a drawing surface; callers skip rendering
	ErrNoScreen = errors.New("banner: no screen")
	// ErrUnmounted is returned when mounting an instance that was already torn down
	ErrUnmounted = errors.New("banner: unmounted")
)

// eventBuffer is the screen event channel capacity between tcell and the loop
const eventBuffer = 64

// Banner is one mounted flow banner instance
// It owns its scene, renderer and loop; all scene access happens on the loop goroutine
type Banner struct {
	id     string
	screen tcell.Screen
	opts   options
	logger *zap.Logger
	clock  engine.TimeProvider

	scene    *flow.Scene
	renderer *render.Renderer
	loop     *engine.Loop

	// Loop goroutine state
	reduced bool
	debug   bool
	button1 bool
	inside  bool

	mu        sync.Mutex
	mounted   bool
	unmounted bool
	quit      chan struct{}

	done     chan struct{}
	doneOnce sync.Once
}

// New creates an unmounted banner drawing flow cfg on screen
func New(screen tcell.Screen, cfg flow.Config, opts ...Option) (*Banner, error) {
	if screen == nil {
		return nil, ErrNoScreen
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = engine.NewMonotonicTimeProvider()
	}
	if !o.hasSeed {
		o.seed = uint64(time.Now().UnixNano())
	}

	id := uuid.NewString()
	b := &Banner{
		id:       id,
		screen:   screen,
		opts:     o,
		logger:   o.logger.With(zap.String("instance", id)),
		clock:    o.clock,
		scene:    flow.NewScene(cfg, o.seed),
		renderer: render.NewRenderer(screen, render.NewViewport(0, 0, 0, 0).WithCellSize(o.cellW, o.cellH)),
		reduced:  o.reduced,
		debug:    o.debug,
		done:     make(chan struct{}),
	}
	b.scene.SetStatic(o.reduced)
	b.loop = engine.NewLoop(o.clock, time.Second/time.Duration(o.fps), b.frame)
	return b, nil
}

// ID returns the instance id used in log records
func (b *Banner) ID() string {
	return b.id
}

// Mount enables mouse and focus reporting, lays out the scene and starts the loop
// Mounting twice is a no-op
func (b *Banner) Mount() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unmounted {
		return ErrUnmounted
	}
	if b.mounted {
		return nil
	}

	engine.SetRestoreHook(b.screen.Fini)

	b.screen.EnableMouse(tcell.MouseMotionEvents)
	b.screen.EnableFocus()
	b.applySize()

	events := make(chan tcell.Event, eventBuffer)
	b.quit = make(chan struct{})
	quit := b.quit
	engine.Go(func() { b.screen.ChannelEvents(events, quit) })
	engine.Go(func() { b.forward(events) })

	b.loop.SetAnimating(!b.reduced)
	b.loop.Start()
	b.loop.Post(func() { b.draw(b.clock.Now()) })
	b.mounted = true

	st := b.scene.Stats()
	b.logger.Info("banner mounted",
		zap.Int("stages", len(b.scene.Layout().Stages)),
		zap.Int("particles", st.Particles),
		zap.Bool("reduced_motion", b.reduced))
	return nil
}

// Unmount stops the loop, unsubscribes from screen events and releases sound
// No frame or event callback runs after it returns. Safe to call more than once
// and from any goroutine other than the loop's own
func (b *Banner) Unmount() {
	b.mu.Lock()
	if b.unmounted {
		b.mu.Unlock()
		return
	}
	b.unmounted = true
	mounted := b.mounted
	b.mu.Unlock()

	b.loop.Stop()

	if mounted {
		close(b.quit)
		b.screen.DisableMouse()
		b.screen.DisableFocus()
		engine.SetRestoreHook(nil)
	}
	if b.opts.sound != nil {
		b.opts.sound.Cleanup()
	}
	b.closeDone()

	if mounted {
		b.logger.Info("banner unmounted", zap.Uint64("frames", b.loop.Frames()))
	}
	_ = b.logger.Sync()
}

// Done is closed when the user asks to quit or the banner is unmounted
func (b *Banner) Done() <-chan struct{} {
	return b.done
}

func (b *Banner) closeDone() {
	b.doneOnce.Do(func() { close(b.done) })
}

// Stats returns scene counters read on the loop goroutine
func (b *Banner) Stats() flow.Stats {
	var st flow.Stats
	b.call(func() { st = b.scene.Stats() })
	return st
}

// Hovered returns the id of the stage showing its tooltip
func (b *Banner) Hovered() (string, bool) {
	var id string
	var ok bool
	b.call(func() {
		var st flow.Stage
		st, ok = b.scene.Tooltip()
		id = st.ID
	})
	return id, ok
}

// ReducedMotion reports whether the static presentation is active
func (b *Banner) ReducedMotion() bool {
	var on bool
	b.call(func() { on = b.reduced })
	return on
}

// call runs fn on the loop goroutine and waits for it
// Before Mount and after Unmount nothing else touches the scene, so fn runs inline
func (b *Banner) call(fn func()) {
	if !b.loop.Running() {
		fn()
		return
	}
	ran := make(chan struct{})
	if !b.loop.Post(func() { fn(); close(ran) }) {
		return
	}
	select {
	case <-ran:
	case <-b.loop.Done():
	}
}

// forward moves screen events onto the loop goroutine until the subscription closes
func (b *Banner) forward(events <-chan tcell.Event) {
	for ev := range events {
		if !b.loop.Post(func() { b.handleEvent(ev) }) {
			return
		}
	}
}

// applySize recomputes the banner viewport, layout and pane region from the screen size
func (b *Banner) applySize() {
	w, h := b.screen.Size()
	rows := b.opts.rows
	if rows <= 0 || rows > h {
		rows = h
	}

	view := render.NewViewport(0, 0, w, rows).WithCellSize(b.opts.cellW, b.opts.cellH)
	b.renderer.SetViewport(view)

	pw, ph := view.PixelSize()
	if b.scene.Resize(pw, ph) {
		b.logger.Debug("layout regenerated",
			zap.Float64("width", pw),
			zap.Float64("height", ph),
			zap.Int("particles", len(b.scene.Particles())))
	}

	if b.opts.pane != nil {
		b.opts.pane.SetRegion(0, rows, w, h-rows)
	}
}

// frame is the loop tick while animating
func (b *Banner) frame(now time.Time) {
	b.scene.Update(now)
	b.draw(now)
}

// draw renders banner and pane, then flushes the screen
func (b *Banner) draw(now time.Time) {
	b.renderer.Draw(b.scene, render.DrawOptions{
		Now:     now,
		Static:  b.reduced,
		Debug:   b.debug,
		Running: b.loop.Animating(),
	})
	if b.opts.pane != nil {
		b.opts.pane.Update(now, !b.reduced)
		b.opts.pane.Draw(b.screen)
	}
	b.screen.Show()
}
