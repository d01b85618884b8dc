package banner

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/flow-banner/engine"
	"github.com/lixenwraith/flow-banner/parameter"
)

// Navigator scrolls the host page to the section with id, false if unknown
type Navigator interface {
	ScrollTo(id string) bool
}

// Pane is the content drawn below the banner, typically a page.Pager
type Pane interface {
	SetRegion(x, y, cols, rows int)
	Update(now time.Time, animate bool)
	Draw(screen tcell.Screen)
}

// Scroller is optionally implemented by a Pane for keyboard scrolling
type Scroller interface {
	ScrollBy(n int)
	Top()
	Bottom()
}

// Sound is the pop feedback player
type Sound interface {
	PlayPop(link int)
	Cleanup()
}

type options struct {
	nav     Navigator
	pane    Pane
	sound   Sound
	logger  *zap.Logger
	clock   engine.TimeProvider
	seed    uint64
	hasSeed bool

	fps          int
	rows         int
	cellW, cellH int
	reduced      bool
	debug        bool
}

func defaultOptions() options {
	return options{
		logger: zap.NewNop(),
		fps:    parameter.FrameRate,
		rows:   parameter.BannerRows,
		cellW:  parameter.CellWidth,
		cellH:  parameter.CellHeight,
	}
}

// Option configures a Banner
type Option func(*options)

// WithNavigator routes stage clicks and number keys to nav
func WithNavigator(nav Navigator) Option {
	return func(o *options) { o.nav = nav }
}

// WithPane draws p in the rows below the banner
func WithPane(p Pane) Option {
	return func(o *options) { o.pane = p }
}

// WithSound plays s on every pop
func WithSound(s Sound) Option {
	return func(o *options) { o.sound = s }
}

// WithLogger sets the instance logger
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock sets the time source for frames and clicks
func WithClock(c engine.TimeProvider) Option {
	return func(o *options) { o.clock = c }
}

// WithSeed fixes the particle seed, otherwise it is taken from the clock
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.hasSeed = true
	}
}

// WithFrameRate sets frames per second
func WithFrameRate(fps int) Option {
	return func(o *options) {
		if fps > 0 {
			o.fps = fps
		}
	}
}

// WithRows sets the banner height in rows, 0 takes the whole screen
func WithRows(rows int) Option {
	return func(o *options) { o.rows = max(rows, 0) }
}

// WithCellSize sets the logical pixel size of one cell
func WithCellSize(w, h int) Option {
	return func(o *options) {
		if w > 0 && h > 0 {
			o.cellW, o.cellH = w, h
		}
	}
}

// WithReducedMotion starts without the frame ticker, drawing static frames on input
func WithReducedMotion(on bool) Option {
	return func(o *options) { o.reduced = on }
}

// WithDebug shows the counters line
func WithDebug(on bool) Option {
	return func(o *options) { o.debug = on }
}
