package flow

import (
	"math"

	"github.com/lixenwraith/flow-banner/parameter"
	"github.com/lixenwraith/flow-banner/vmath"
)

// StageDef is the static description of a stage, ID doubles as page section id
type StageDef struct {
	ID          string
	Label       string
	Description string
	Color       string
}

// Stage is a positioned stage, recomputed wholesale on every layout
type Stage struct {
	StageDef
	Center vmath.Vec2
	Width  float64
	Height float64
}

// Bounds returns the stage box
func (s Stage) Bounds() vmath.Rect {
	return vmath.RectCentered(s.Center, s.Width, s.Height)
}

// Contains is the axis aligned hit test used by hover and click
func (s Stage) Contains(p vmath.Vec2) bool {
	return s.Bounds().Contains(p)
}

// RightEdge is where outgoing links start
func (s Stage) RightEdge() vmath.Vec2 {
	return vmath.Vec2{X: s.Center.X + s.Width/2, Y: s.Center.Y}
}

// LeftEdge is where incoming links end
func (s Stage) LeftEdge() vmath.Vec2 {
	return vmath.Vec2{X: s.Center.X - s.Width/2, Y: s.Center.Y}
}

// Layout is the stage geometry for one surface size
type Layout struct {
	Width, Height float64
	Stages        []Stage
}

// ComputeLayout spaces stages evenly on a horizontal line at anchor*h
// Stage i is centered at w/(N+1)*(i+1), one gap of margin on each side
// Negative sizes are treated as zero; the result is always a valid, possibly degenerate, layout
func ComputeLayout(defs []StageDef, w, h, anchor float64) Layout {
	w = math.Max(w, 0)
	h = math.Max(h, 0)
	layout := Layout{Width: w, Height: h}

	n := len(defs)
	if n == 0 {
		return layout
	}

	gap := w / float64(n+1)
	width := vmath.Clamp(math.Floor(gap*parameter.StageWidthGapRatio), parameter.StageMinWidth, parameter.StageMaxWidth)
	y := h * anchor

	layout.Stages = make([]Stage, n)
	for i, def := range defs {
		layout.Stages[i] = Stage{
			StageDef: def,
			Center:   vmath.Vec2{X: gap * float64(i+1), Y: y},
			Width:    width,
			Height:   parameter.StageHeight,
		}
	}
	return layout
}

// Differs reports whether any stage moved or resized by more than tol
// Stage count or id changes always differ
func (l Layout) Differs(other Layout, tol float64) bool {
	if len(l.Stages) != len(other.Stages) {
		return true
	}
	for i := range l.Stages {
		a, b := l.Stages[i], other.Stages[i]
		if a.ID != b.ID {
			return true
		}
		if math.Abs(a.Center.X-b.Center.X) > tol ||
			math.Abs(a.Center.Y-b.Center.Y) > tol ||
			math.Abs(a.Width-b.Width) > tol ||
			math.Abs(a.Height-b.Height) > tol {
			return true
		}
	}
	return false
}

// StageAt returns the index of the stage containing p, or -1
func (l Layout) StageAt(p vmath.Vec2) int {
	for i := range l.Stages {
		if l.Stages[i].Contains(p) {
			return i
		}
	}
	return -1
}
