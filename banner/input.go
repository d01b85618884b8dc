package banner

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// wheelStep is the number of pager lines scrolled per wheel notch
const wheelStep = 3

// handleEvent runs on the loop goroutine
func (b *Banner) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		b.applySize()
		b.screen.Sync()
	case *tcell.EventMouse:
		b.handleMouse(ev)
	case *tcell.EventFocus:
		if !ev.Focused {
			b.leave()
		}
	case *tcell.EventKey:
		b.handleKey(ev)
	default:
		return
	}

	// Animated frames pick the change up on the next tick
	if !b.loop.Animating() {
		b.draw(b.clock.Now())
	}
}

func (b *Banner) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	view := b.renderer.Viewport()

	pressed := buttons&tcell.Button1 != 0
	edge := pressed && !b.button1
	b.button1 = pressed

	if !view.ContainsCell(x, y) {
		b.leave()
		if s, ok := b.opts.pane.(Scroller); ok {
			switch {
			case buttons&tcell.WheelUp != 0:
				s.ScrollBy(-wheelStep)
			case buttons&tcell.WheelDown != 0:
				s.ScrollBy(wheelStep)
			}
		}
		return
	}

	p := view.CellToPixel(x, y)
	b.inside = true
	if !edge {
		b.scene.PointerMove(p)
		return
	}

	res := b.scene.Click(p, b.clock.Now())
	if res.Popped >= 0 {
		b.logger.Debug("particle popped", zap.Int("particle", res.Popped), zap.Int("link", res.Link))
		if b.opts.sound != nil {
			b.opts.sound.PlayPop(res.Link)
		}
	}
	if res.Section != "" {
		b.navigate(res.Section)
	}
}

// leave hides hover state once per exit from the banner region
func (b *Banner) leave() {
	if !b.inside {
		return
	}
	b.inside = false
	b.scene.PointerLeave()
}

func (b *Banner) navigate(id string) {
	if b.opts.nav == nil {
		return
	}
	ok := b.opts.nav.ScrollTo(id)
	b.logger.Info("navigate", zap.String("section", id), zap.Bool("found", ok))
}

func (b *Banner) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		b.closeDone()
		return
	case tcell.KeyUp:
		b.scroll(func(s Scroller) { s.ScrollBy(-1) })
		return
	case tcell.KeyDown:
		b.scroll(func(s Scroller) { s.ScrollBy(1) })
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch r := ev.Rune(); {
	case r == 'q':
		b.closeDone()
	case r == 'j':
		b.scroll(func(s Scroller) { s.ScrollBy(1) })
	case r == 'k':
		b.scroll(func(s Scroller) { s.ScrollBy(-1) })
	case r == 'g':
		b.scroll(func(s Scroller) { s.Top() })
	case r == 'G':
		b.scroll(func(s Scroller) { s.Bottom() })
	case r >= '1' && r <= '9':
		stages := b.scene.Layout().Stages
		if idx := int(r - '1'); idx < len(stages) {
			b.navigate(stages[idx].ID)
		}
	case r == 'm':
		b.reduced = !b.reduced
		b.scene.SetStatic(b.reduced)
		b.loop.SetAnimating(!b.reduced)
		b.logger.Info("motion toggled", zap.Bool("reduced_motion", b.reduced))
	case r == 'd':
		b.debug = !b.debug
	}
}

func (b *Banner) scroll(fn func(Scroller)) {
	if s, ok := b.opts.pane.(Scroller); ok {
		fn(s)
	}
}
