package render

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestPaletteParsesHexAndFallsBack(t *testing.T) {
	p := NewPalette()
	c := p.Color("#ef4444")
	r, g, b := c.RGB255()
	assert.Equal(t, []uint8{0xef, 0x44, 0x44}, []uint8{r, g, b})

	assert.Equal(t, RgbFallback, p.Color("not-a-color"))
}

func TestBlendModes(t *testing.T) {
	black := colorful.Color{}
	red := colorful.Color{R: 1}

	assert.Equal(t, red, Blend(black, red, 0.3, BlendReplace))

	half := Blend(black, red, 0.5, BlendAlpha)
	assert.InDelta(t, 0.5, half.R, 1e-9)

	// Screen never darkens
	grey := colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	s := Blend(grey, red, 1, BlendScreen)
	assert.InDelta(t, 1.0, s.R, 1e-9)
	assert.InDelta(t, 0.5, s.G, 1e-9)

	assert.InDelta(t, 1.0, Lighten(black, 1).B, 1e-9)
}

func TestWrapAndTruncate(t *testing.T) {
	lines := Wrap("We find out what your data can and cannot tell you.", 20)
	assert.Equal(t, []string{"We find out what", "your data can and", "cannot tell you."}, lines)
	for _, l := range lines {
		assert.LessOrEqual(t, TextWidth(l), 20)
	}

	assert.Nil(t, Wrap("anything", 0))
	assert.Equal(t, "Busi…", Truncate("Business", 5))
	assert.Equal(t, "Data", Truncate("Data", 5))
}
