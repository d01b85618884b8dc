package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/flow-banner/vmath"
)

func TestViewportMapping(t *testing.T) {
	v := NewViewport(2, 3, 10, 4)

	w, h := v.PixelSize()
	assert.Equal(t, 80.0, w)
	assert.Equal(t, 64.0, h)

	p := v.CellToPixel(2, 3)
	assert.Equal(t, vmath.Vec2{X: 4, Y: 8}, p)

	col, row, ok := v.PixelToCell(p)
	assert.True(t, ok)
	assert.Equal(t, 2, col)
	assert.Equal(t, 3, row)

	_, _, ok = v.PixelToCell(vmath.Vec2{X: -1, Y: 0})
	assert.False(t, ok)
	_, _, ok = v.PixelToCell(vmath.Vec2{X: 80, Y: 0})
	assert.False(t, ok)
}

func TestViewportRectToCells(t *testing.T) {
	v := NewViewport(0, 0, 80, 12)

	c0, r0, c1, r1, ok := v.RectToCells(vmath.Rect{Min: vmath.Vec2{X: 85.5, Y: 77.84}, Max: vmath.Vec2{X: 170.5, Y: 121.84}})
	assert.True(t, ok)
	assert.Equal(t, []int{10, 4, 21, 7}, []int{c0, r0, c1, r1})

	_, _, _, _, ok = v.RectToCells(vmath.Rect{Min: vmath.Vec2{X: 700, Y: 0}, Max: vmath.Vec2{X: 800, Y: 10}})
	assert.False(t, ok)
}

func TestViewportCellSize(t *testing.T) {
	v := NewViewport(0, 0, 10, 10).WithCellSize(10, 20)
	w, h := v.PixelSize()
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 200.0, h)

	v = v.WithCellSize(0, -1)
	assert.Equal(t, 10, v.CellW)
	assert.Equal(t, 20, v.CellH)
}
