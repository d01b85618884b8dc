package flow

import (
	"github.com/lixenwraith/flow-banner/parameter"
	"github.com/lixenwraith/flow-banner/vmath"
)

// Link joins stage Index to stage Index+1
type Link struct {
	Index  int
	Curve  vmath.CubicBezier
	Length float64
	Color  string
}

// BuildLinks creates one link per adjacent stage pair
// The curve runs edge to edge with control points offset perpendicular to the chord,
// first up then down, giving a gentle S arc
func BuildLinks(stages []Stage) []Link {
	if len(stages) < 2 {
		return nil
	}

	links := make([]Link, 0, len(stages)-1)
	for i := 0; i < len(stages)-1; i++ {
		a, b := stages[i], stages[i+1]
		start := a.RightEdge()
		end := b.LeftEdge()

		chord := vmath.V2Sub(end, start)
		length := vmath.V2Mag(chord)
		if length < parameter.MinLinkLength || end.X < start.X {
			// Overlapping or touching boxes, keep a unit link pointing downstream
			length = parameter.MinLinkLength
			end = vmath.Vec2{X: start.X + length, Y: start.Y}
			chord = vmath.V2Sub(end, start)
		}

		normal := vmath.V2Scale(vmath.V2Perp(chord), parameter.LinkArcOffset)
		links = append(links, Link{
			Index: i,
			Curve: vmath.CubicBezier{
				P0: start,
				P1: vmath.V2Add(vmath.V2Lerp(start, end, parameter.LinkControlNear), normal),
				P2: vmath.V2Sub(vmath.V2Lerp(start, end, parameter.LinkControlFar), normal),
				P3: end,
			},
			Length: length,
			Color:  a.Color,
		})
	}
	return links
}

// PointAt evaluates the curve at t, shifted offset px along the curve normal
func (l Link) PointAt(t, offset float64) vmath.Vec2 {
	p := l.Curve.At(t)
	if offset == 0 {
		return p
	}
	n := vmath.V2Perp(l.Curve.Tangent(t))
	return vmath.V2Add(p, vmath.V2Scale(n, offset))
}
