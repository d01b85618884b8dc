package flow

import (
	"time"

	"github.com/lixenwraith/flow-banner/vmath"
)

// PopEffect is the expanding ring left by a popped particle
type PopEffect struct {
	Pos    vmath.Vec2
	Start  time.Time
	Radius float64
	Color  string
}

// Age returns time since the pop
func (e PopEffect) Age(now time.Time) time.Duration {
	return now.Sub(e.Start)
}

// Expired reports whether the effect outlived d
func (e PopEffect) Expired(now time.Time, d time.Duration) bool {
	return e.Age(now) > d
}

// Progress maps age into [0, 1] over d
func (e PopEffect) Progress(now time.Time, d time.Duration) float64 {
	if d <= 0 {
		return 1
	}
	return vmath.Clamp(float64(e.Age(now))/float64(d), 0, 1)
}
