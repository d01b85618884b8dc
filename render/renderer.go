package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/flow-banner/flow"
	"github.com/lixenwraith/flow-banner/parameter"
	"github.com/lixenwraith/flow-banner/vmath"
)

// Glyphs
const (
	GlyphParticle      = '●'
	GlyphParticleSmall = '•'
	GlyphParticleHover = '◉'
	GlyphRing          = '∘'
	GlyphSpark         = '✶'
	GlyphGuideFlat     = '─'
	GlyphGuideUp       = '╱'
	GlyphGuideDown     = '╲'
)

// ringSamples is the number of points plotted per pop ring
const ringSamples = 28

// DrawOptions controls one frame
type DrawOptions struct {
	Now time.Time
	// Static draws guides, stages and tooltip only (reduced motion)
	Static bool
	// Debug adds a counters line at the bottom of the viewport
	Debug   bool
	Running bool
}

// Renderer draws a flow.Scene into a screen region
// Draw order is fixed: guides, particles, rings, stages, tooltip, so stages are never occluded
type Renderer struct {
	screen  tcell.Screen
	view    Viewport
	palette *Palette
	bg      colorful.Color
	bgStyle tcell.Style
}

// NewRenderer creates a renderer for view on screen
func NewRenderer(screen tcell.Screen, view Viewport) *Renderer {
	return &Renderer{
		screen:  screen,
		view:    view,
		palette: NewPalette(),
		bg:      RgbBackground,
		bgStyle: tcell.StyleDefault.Background(ToTcell(RgbBackground)),
	}
}

// Viewport returns the region being drawn
func (r *Renderer) Viewport() Viewport {
	return r.view
}

// SetViewport changes the region, typically after a resize
func (r *Renderer) SetViewport(v Viewport) {
	r.view = v
}

// Draw renders the scene; it does not call Show
func (r *Renderer) Draw(scene *flow.Scene, opts DrawOptions) {
	v := r.view
	if v.Cols <= 0 || v.Rows <= 0 {
		return
	}
	FillRect(r.screen, v.X, v.Y, v.X+v.Cols-1, v.Y+v.Rows-1, ' ', r.bgStyle)

	r.drawGuides(scene.Links())
	if !opts.Static {
		r.drawParticles(scene)
		r.drawRings(scene.Effects(), opts.Now, scene.Config().PopDuration)
	}
	tip, hovered := scene.Tooltip()
	r.drawStages(scene.Layout().Stages, tip.ID, hovered)
	if hovered {
		r.drawTooltip(tip)
	}
	if opts.Debug {
		r.drawDebug(scene.Stats(), opts)
	}
}

func (r *Renderer) drawGuides(links []flow.Link) {
	for _, link := range links {
		base := r.palette.Color(link.Color)
		fg := ToTcell(Blend(r.bg, base, GuideAlpha, BlendAlpha))
		core := ToTcell(Blend(r.bg, base, GuideCoreAlpha, BlendAlpha))

		for i, p := range link.Curve.Sample(parameter.LinkSamples) {
			col, row, ok := r.view.PixelToCell(p)
			if !ok {
				continue
			}
			t := float64(i) / parameter.LinkSamples
			tan := link.Curve.Tangent(t)

			glyph := GlyphGuideFlat
			style := r.bgStyle.Foreground(core)
			// Screen y grows downward, so a negative slope climbs
			if math.Abs(tan.Y) > 0.5*math.Abs(tan.X)*float64(r.view.CellH)/float64(r.view.CellW) {
				style = r.bgStyle.Foreground(fg)
				if tan.Y < 0 {
					glyph = GlyphGuideUp
				} else {
					glyph = GlyphGuideDown
				}
			}
			r.screen.SetContent(col, row, glyph, nil, style)
		}
	}
}

func (r *Renderer) drawParticles(scene *flow.Scene) {
	pointer := scene.Pointer()
	hover2 := scene.Config().HoverRadius * scene.Config().HoverRadius

	for _, p := range scene.Particles() {
		if p.Popped {
			continue
		}
		col, row, ok := r.view.PixelToCell(p.Pos)
		if !ok {
			continue
		}
		c := r.palette.Color(p.Color)
		glyph := GlyphParticleSmall
		if p.Size >= (parameter.ParticleMinSize+parameter.ParticleMaxSize)/2 {
			glyph = GlyphParticle
		}
		if pointer.Present && vmath.V2DistSq(p.Pos, pointer.Pos) < hover2 {
			glyph = GlyphParticleHover
			c = Lighten(c, HoverLift)
		}
		r.screen.SetContent(col, row, glyph, nil, r.bgStyle.Foreground(ToTcell(c)))
	}
}

func (r *Renderer) drawRings(effects []flow.PopEffect, now time.Time, d time.Duration) {
	for _, e := range effects {
		progress := e.Progress(now, d)
		radius := e.Radius * (1 + (parameter.PopRingGrowth-1)*progress)
		fade := RingAlpha * (1 - progress)
		c := ToTcell(Blend(r.bg, r.palette.Color(e.Color), fade, BlendScreen))
		style := r.bgStyle.Foreground(c)

		for i := 0; i < ringSamples; i++ {
			a := 2 * math.Pi * float64(i) / ringSamples
			p := vmath.Vec2{X: e.Pos.X + radius*math.Cos(a), Y: e.Pos.Y + radius*math.Sin(a)}
			if col, row, ok := r.view.PixelToCell(p); ok {
				r.screen.SetContent(col, row, GlyphRing, nil, style)
			}
		}
		if progress < 0.3 {
			if col, row, ok := r.view.PixelToCell(e.Pos); ok {
				r.screen.SetContent(col, row, GlyphSpark, nil, r.bgStyle.Foreground(ToTcell(Lighten(r.palette.Color(e.Color), 0.6))))
			}
		}
	}
}

func (r *Renderer) drawStages(stages []flow.Stage, hoverID string, hovered bool) {
	for _, st := range stages {
		c0, r0, c1, r1, ok := r.view.RectToCells(st.Bounds())
		if !ok {
			continue
		}
		fill := r.palette.Color(st.Color)
		if hovered && st.ID == hoverID {
			fill = Lighten(fill, HoverLift/2)
		}
		fillStyle := tcell.StyleDefault.Background(ToTcell(fill))
		borderStyle := fillStyle.Foreground(ToTcell(Lighten(fill, StageBorderLift)))
		FillRect(r.screen, c0, r0, c1, r1, ' ', fillStyle)

		if r1-r0 >= 2 && c1-c0 >= 2 {
			for x := c0 + 1; x < c1; x++ {
				r.screen.SetContent(x, r0, '─', nil, borderStyle)
				r.screen.SetContent(x, r1, '─', nil, borderStyle)
			}
			for y := r0 + 1; y < r1; y++ {
				r.screen.SetContent(c0, y, '│', nil, borderStyle)
				r.screen.SetContent(c1, y, '│', nil, borderStyle)
			}
			r.screen.SetContent(c0, r0, '╭', nil, borderStyle)
			r.screen.SetContent(c1, r0, '╮', nil, borderStyle)
			r.screen.SetContent(c0, r1, '╰', nil, borderStyle)
			r.screen.SetContent(c1, r1, '╯', nil, borderStyle)
		}

		inner := c1 - c0 - 1
		if inner < 1 {
			inner = c1 - c0 + 1
		}
		label := Truncate(st.Label, inner)
		x := c0 + (c1-c0+1-TextWidth(label))/2
		y := r0 + (r1-r0)/2
		DrawText(r.screen, x, y, c1+1, label, fillStyle.Foreground(ToTcell(RgbLabel)).Bold(true))
	}
}

func (r *Renderer) drawTooltip(st flow.Stage) {
	v := r.view
	maxInner := min(parameter.TooltipMaxWidth, v.Cols) - 4
	if maxInner < 1 {
		return
	}
	lines := append([]string{Truncate(st.Label, maxInner)}, Wrap(st.Description, maxInner)...)

	inner := 0
	for _, l := range lines {
		inner = max(inner, TextWidth(l))
	}
	w := inner + 4
	h := len(lines) + 2
	if h > v.Rows {
		return
	}

	c0, r0, c1, r1, ok := v.RectToCells(st.Bounds())
	if !ok {
		return
	}
	x := (c0+c1+1)/2 - w/2
	x = max(v.X, min(x, v.X+v.Cols-w))
	y := r0 - h
	if y < v.Y {
		// No room above, anchor below the stage instead
		y = r1 + 1
	}
	if y+h > v.Y+v.Rows {
		y = v.Y + v.Rows - h
	}

	bg := tcell.StyleDefault.Background(ToTcell(RgbTooltipBg))
	border := bg.Foreground(ToTcell(r.palette.Color(st.Color)))
	text := bg.Foreground(ToTcell(RgbTooltipText))

	FillRect(r.screen, x, y, x+w-1, y+h-1, ' ', bg)
	for i := x + 1; i < x+w-1; i++ {
		r.screen.SetContent(i, y, '─', nil, border)
		r.screen.SetContent(i, y+h-1, '─', nil, border)
	}
	for j := y + 1; j < y+h-1; j++ {
		r.screen.SetContent(x, j, '│', nil, border)
		r.screen.SetContent(x+w-1, j, '│', nil, border)
	}
	r.screen.SetContent(x, y, '┌', nil, border)
	r.screen.SetContent(x+w-1, y, '┐', nil, border)
	r.screen.SetContent(x, y+h-1, '└', nil, border)
	r.screen.SetContent(x+w-1, y+h-1, '┘', nil, border)

	for i, l := range lines {
		style := text
		if i == 0 {
			style = text.Bold(true)
		}
		DrawText(r.screen, x+2, y+1+i, x+w-2, l, style)
	}
}

func (r *Renderer) drawDebug(st flow.Stats, opts DrawOptions) {
	running := "no"
	if opts.Running {
		running = "yes"
	}
	line := fmt.Sprintf(" links %d • particles %d • popped %d • rings %d • frames %d • running %s ",
		st.Links, st.Particles, st.Popped, st.Effects, st.Frames, running)
	y := r.view.Y + r.view.Rows - 1
	x := r.view.X + r.view.Cols - TextWidth(line)
	x = max(x, r.view.X)
	DrawText(r.screen, x, y, r.view.X+r.view.Cols, line, r.bgStyle.Foreground(ToTcell(RgbDebugText)))
}
