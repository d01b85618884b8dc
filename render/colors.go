package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Base palette
var (
	RgbBackground  = colorful.Color{R: 26.0 / 255, G: 27.0 / 255, B: 38.0 / 255} // Tokyo Night background
	RgbLabel       = colorful.Color{R: 1, G: 1, B: 1}
	RgbTooltipBg   = colorful.Color{R: 36.0 / 255, G: 40.0 / 255, B: 59.0 / 255}
	RgbTooltipText = colorful.Color{R: 192.0 / 255, G: 202.0 / 255, B: 245.0 / 255}
	RgbDebugText   = colorful.Color{R: 0.6, G: 0.6, B: 0.6}
	RgbFallback    = colorful.Color{R: 60.0 / 255, G: 120.0 / 255, B: 180.0 / 255}
)

// Opacity of composited layers
const (
	GuideAlpha      = 0.22
	GuideCoreAlpha  = 0.35
	RingAlpha       = 0.9
	HoverLift       = 0.35
	StageBorderLift = 0.25
)

// BlendMode selects how a layer color combines with what is below it
type BlendMode uint8

const (
	BlendReplace BlendMode = iota
	BlendAlpha
	BlendScreen
)

// Blend composites src over dst with opacity alpha
func Blend(dst, src colorful.Color, alpha float64, mode BlendMode) colorful.Color {
	switch mode {
	case BlendAlpha:
		return dst.BlendRgb(src, alpha).Clamped()
	case BlendScreen:
		screened := colorful.Color{
			R: 1 - (1-dst.R)*(1-src.R),
			G: 1 - (1-dst.G)*(1-src.G),
			B: 1 - (1-dst.B)*(1-src.B),
		}
		return dst.BlendRgb(screened, alpha).Clamped()
	default:
		return src.Clamped()
	}
}

// Lighten moves c toward white by amount in [0, 1]
func Lighten(c colorful.Color, amount float64) colorful.Color {
	return c.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, amount).Clamped()
}

// ToTcell converts to a truecolor tcell color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Palette caches parsed hex colors; unparsable input maps to RgbFallback
type Palette struct {
	cache map[string]colorful.Color
}

// NewPalette creates an empty palette
func NewPalette() *Palette {
	return &Palette{cache: make(map[string]colorful.Color)}
}

// Color returns the parsed color for hex
func (p *Palette) Color(hex string) colorful.Color {
	if c, ok := p.cache[hex]; ok {
		return c
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		c = RgbFallback
	}
	p.cache[hex] = c
	return c
}
