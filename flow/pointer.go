package flow

import (
	"github.com/lixenwraith/flow-banner/parameter"
	"github.com/lixenwraith/flow-banner/vmath"
)

// Pointer is the transient pointer position relative to the surface
type Pointer struct {
	Pos     vmath.Vec2
	Present bool
}

// FarAway is the absent pointer, its position never hits anything on screen
func FarAway() Pointer {
	return Pointer{Pos: vmath.Vec2{X: parameter.PointerFarAway, Y: parameter.PointerFarAway}}
}
