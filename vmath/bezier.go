package vmath

// CubicBezier is a cubic curve P0 -> P3 with control points P1, P2
type CubicBezier struct {
	P0, P1, P2, P3 Vec2
}

// At evaluates the curve at t in [0,1] using the Bernstein form
func (c CubicBezier) At(t float64) Vec2 {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Vec2{
		X: b0*c.P0.X + b1*c.P1.X + b2*c.P2.X + b3*c.P3.X,
		Y: b0*c.P0.Y + b1*c.P1.Y + b2*c.P2.Y + b3*c.P3.Y,
	}
}

// Tangent returns the first derivative at t
func (c CubicBezier) Tangent(t float64) Vec2 {
	u := 1 - t
	d0 := V2Scale(V2Sub(c.P1, c.P0), 3*u*u)
	d1 := V2Scale(V2Sub(c.P2, c.P1), 6*u*t)
	d2 := V2Scale(V2Sub(c.P3, c.P2), 3*t*t)
	return V2Add(V2Add(d0, d1), d2)
}

// Sample returns n+1 evenly spaced points in t, endpoints included
func (c CubicBezier) Sample(n int) []Vec2 {
	if n < 1 {
		n = 1
	}
	points := make([]Vec2, n+1)
	for i := 0; i <= n; i++ {
		points[i] = c.At(float64(i) / float64(n))
	}
	return points
}
