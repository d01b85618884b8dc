package render

import (
	"math"

	"github.com/lixenwraith/flow-banner/parameter"
	"github.com/lixenwraith/flow-banner/vmath"
)

// Viewport maps a cell region of the screen onto a logical pixel surface
// Each cell covers CellW x CellH pixels, the terminal analogue of device pixel ratio
type Viewport struct {
	X, Y         int // top-left cell
	Cols, Rows   int
	CellW, CellH int
}

// NewViewport creates a viewport with default cell metrics
func NewViewport(x, y, cols, rows int) Viewport {
	return Viewport{
		X: x, Y: y,
		Cols: max(cols, 0), Rows: max(rows, 0),
		CellW: parameter.CellWidth, CellH: parameter.CellHeight,
	}
}

// WithCellSize overrides cell metrics, non-positive values keep defaults
func (v Viewport) WithCellSize(w, h int) Viewport {
	if w > 0 {
		v.CellW = w
	}
	if h > 0 {
		v.CellH = h
	}
	return v
}

// PixelSize returns the logical surface size
func (v Viewport) PixelSize() (float64, float64) {
	return float64(v.Cols * v.CellW), float64(v.Rows * v.CellH)
}

// ContainsCell reports whether screen cell (col, row) is inside the viewport
func (v Viewport) ContainsCell(col, row int) bool {
	return col >= v.X && col < v.X+v.Cols && row >= v.Y && row < v.Y+v.Rows
}

// CellToPixel returns the pixel at the centre of screen cell (col, row)
func (v Viewport) CellToPixel(col, row int) vmath.Vec2 {
	return vmath.Vec2{
		X: (float64(col-v.X) + 0.5) * float64(v.CellW),
		Y: (float64(row-v.Y) + 0.5) * float64(v.CellH),
	}
}

// PixelToCell returns the screen cell covering pixel p; ok is false outside the viewport
func (v Viewport) PixelToCell(p vmath.Vec2) (col, row int, ok bool) {
	col = v.X + int(math.Floor(p.X/float64(v.CellW)))
	row = v.Y + int(math.Floor(p.Y/float64(v.CellH)))
	return col, row, v.ContainsCell(col, row)
}

// RectToCells converts a pixel rect to an inclusive cell span clipped to the viewport
// ok is false when nothing remains after clipping
func (v Viewport) RectToCells(r vmath.Rect) (c0, r0, c1, r1 int, ok bool) {
	c0 = v.X + int(math.Floor(r.Min.X/float64(v.CellW)))
	r0 = v.Y + int(math.Floor(r.Min.Y/float64(v.CellH)))
	c1 = v.X + int(math.Ceil(r.Max.X/float64(v.CellW))) - 1
	r1 = v.Y + int(math.Ceil(r.Max.Y/float64(v.CellH))) - 1

	c0 = max(c0, v.X)
	r0 = max(r0, v.Y)
	c1 = min(c1, v.X+v.Cols-1)
	r1 = min(r1, v.Y+v.Rows-1)
	return c0, r0, c1, r1, c0 <= c1 && r0 <= r1
}
