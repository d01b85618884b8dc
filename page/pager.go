package page

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flow-banner/parameter"
	"github.com/lixenwraith/flow-banner/render"
)

type lineKind uint8

const (
	lineBlank lineKind = iota
	lineTitle
	lineBody
)

type line struct {
	text    string
	kind    lineKind
	section int
}

// Pager is a vertically scrolling column of sections
// ScrollTo eases the offset toward the section with a critically damped spring
// Like the scene, it is confined to the owner's loop goroutine
type Pager struct {
	sections []Section
	palette  *render.Palette

	lines   []line
	anchors map[string]int
	width   int

	x, y, cols, rows int

	spring   harmonica.Spring
	step     time.Duration
	last     time.Time
	pending  time.Duration
	offset   float64
	velocity float64
	target   float64
}

// NewPager creates a pager whose spring steps in 1/fps increments of elapsed time
func NewPager(sections []Section, fps int) *Pager {
	if fps <= 0 {
		fps = parameter.FrameRate
	}
	return &Pager{
		sections: sections,
		palette:  render.NewPalette(),
		anchors:  make(map[string]int),
		spring:   harmonica.NewSpring(harmonica.FPS(fps), parameter.ScrollFrequency, parameter.ScrollDamping),
		step:     time.Second / time.Duration(fps),
	}
}

// SetRegion places the pager on screen; text is rewrapped when the width changes
func (p *Pager) SetRegion(x, y, cols, rows int) {
	p.x, p.y = x, y
	p.cols, p.rows = max(cols, 0), max(rows, 0)

	// First row is the header bar
	if w := p.cols - 4; w != p.width {
		p.width = w
		p.layout()
	}
	p.target = p.clamp(p.target)
	p.offset = p.clamp(p.offset)
}

func (p *Pager) layout() {
	p.lines = p.lines[:0]
	clear(p.anchors)
	if p.width <= 0 {
		return
	}
	for i, s := range p.sections {
		p.anchors[s.ID] = len(p.lines)
		p.lines = append(p.lines, line{text: s.Title, kind: lineTitle, section: i})
		for _, para := range s.Body {
			for _, l := range render.Wrap(para, p.width) {
				p.lines = append(p.lines, line{text: l, kind: lineBody, section: i})
			}
		}
		p.lines = append(p.lines, line{kind: lineBlank, section: i})
	}
}

func (p *Pager) bodyRows() int {
	return max(p.rows-1, 0)
}

func (p *Pager) maxOffset() float64 {
	return math.Max(0, float64(len(p.lines)-p.bodyRows()))
}

func (p *Pager) clamp(v float64) float64 {
	return math.Max(0, math.Min(v, p.maxOffset()))
}

// ScrollTo targets the section with id, false if unknown
func (p *Pager) ScrollTo(id string) bool {
	idx, ok := p.anchors[id]
	if !ok {
		return false
	}
	p.target = p.clamp(float64(idx))
	return true
}

// ScrollBy moves the target by n lines
func (p *Pager) ScrollBy(n int) {
	p.target = p.clamp(math.Round(p.target) + float64(n))
}

// Top targets the first line
func (p *Pager) Top() {
	p.target = 0
}

// Bottom targets the last page
func (p *Pager) Bottom() {
	p.target = p.maxOffset()
}

// Update advances the scroll to now; without animation the offset jumps to the target
// The spring runs one fixed step per elapsed 1/fps and leftover time carries over,
// so easing speed does not depend on how often Update is called
func (p *Pager) Update(now time.Time, animate bool) {
	last := p.last
	p.last = now
	if !animate {
		p.snap()
		return
	}

	steps := 1
	if !last.IsZero() {
		dt := now.Sub(last)
		if dt < 0 {
			dt = 0
		}
		p.pending += min(dt, parameter.MaxFrameDelta)
		steps = int(p.pending / p.step)
		p.pending -= time.Duration(steps) * p.step
	}

	for i := 0; i < steps; i++ {
		if p.settling() {
			p.snap()
			return
		}
		p.offset, p.velocity = p.spring.Update(p.offset, p.velocity, p.target)
		p.offset = p.clamp(p.offset)
	}
}

func (p *Pager) snap() {
	p.offset = p.target
	p.velocity = 0
	p.pending = 0
}

func (p *Pager) settling() bool {
	return math.Abs(p.target-p.offset) < parameter.ScrollSettle && math.Abs(p.velocity) < parameter.ScrollSettle
}

// Offset returns the current top line, fractional while scrolling
func (p *Pager) Offset() float64 {
	return p.offset
}

// Target returns the line the scroll is heading to
func (p *Pager) Target() float64 {
	return p.target
}

// Settled reports whether scrolling has finished
func (p *Pager) Settled() bool {
	return p.offset == p.target
}

// Current returns the id of the section at the top of the view
func (p *Pager) Current() string {
	if len(p.lines) == 0 {
		return ""
	}
	top := min(int(math.Round(p.offset)), len(p.lines)-1)
	return p.sections[p.lines[top].section].ID
}

// Sections returns the configured sections
func (p *Pager) Sections() []Section {
	return p.sections
}

// Draw renders the header bar and visible lines
func (p *Pager) Draw(screen tcell.Screen) {
	if p.cols <= 0 || p.rows <= 0 {
		return
	}
	bg := tcell.StyleDefault.Background(render.ToTcell(render.RgbBackground))
	render.FillRect(screen, p.x, p.y, p.x+p.cols-1, p.y+p.rows-1, ' ', bg)

	current := p.Current()
	header := bg.Background(render.ToTcell(render.RgbTooltipBg)).Foreground(render.ToTcell(render.RgbTooltipText))
	render.FillRect(screen, p.x, p.y, p.x+p.cols-1, p.y, ' ', header)
	title := current
	for _, s := range p.sections {
		if s.ID == current {
			title = s.Title
		}
	}
	bar := fmt.Sprintf(" § %s   j/k scroll · g/G top/bottom · 1-9 jump · m motion · q quit", title)
	render.DrawText(screen, p.x, p.y, p.x+p.cols, render.Truncate(bar, p.cols), header)

	top := int(math.Round(p.offset))
	for i := 0; i < p.bodyRows(); i++ {
		idx := top + i
		if idx >= len(p.lines) {
			break
		}
		l := p.lines[idx]
		row := p.y + 1 + i
		switch l.kind {
		case lineTitle:
			c := render.ToTcell(p.palette.Color(p.sections[l.section].Color))
			style := bg.Foreground(c).Bold(true)
			if p.sections[l.section].ID == current {
				style = style.Underline(true)
			}
			render.DrawText(screen, p.x+2, row, p.x+p.cols, "▍"+l.text, style)
		case lineBody:
			render.DrawText(screen, p.x+2, row, p.x+p.cols, l.text, bg.Foreground(render.ToTcell(render.RgbTooltipText)))
		}
	}
}
