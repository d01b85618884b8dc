package flow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/flow-banner/parameter"
	"github.com/lixenwraith/flow-banner/vmath"
)

func TestComputeLayoutScenario(t *testing.T) {
	layout := ComputeLayout(DefaultStages(), 1200, 600, parameter.AnchorFraction)
	require.Len(t, layout.Stages, 4)

	wantX := []float64{240, 480, 720, 960}
	for i, st := range layout.Stages {
		assert.InDelta(t, wantX[i], st.Center.X, 1e-9, "stage %d x", i)
		assert.InDelta(t, 312.0, st.Center.Y, 1e-9, "stage %d y", i)
		assert.Equal(t, 160.0, st.Width, "stage %d width", i)
		assert.Equal(t, 44.0, st.Height, "stage %d height", i)
	}
}

func TestComputeLayoutEvenSpacing(t *testing.T) {
	defs := DefaultStages()
	for w := float64(len(defs)); w <= 4000; w += 37 {
		layout := ComputeLayout(defs, w, 300, parameter.AnchorFraction)
		step := layout.Stages[1].Center.X - layout.Stages[0].Center.X
		if step <= 0 {
			t.Fatalf("w=%v: centers not increasing", w)
		}
		for i := 1; i < len(layout.Stages); i++ {
			d := layout.Stages[i].Center.X - layout.Stages[i-1].Center.X
			assert.InDelta(t, step, d, 1e-9, "w=%v gap %d", w, i)
		}
	}
}

func TestComputeLayoutWidthClamp(t *testing.T) {
	tests := []struct {
		name  string
		w     float64
		stage int
		want  float64
	}{
		{"narrow clamps to min", 300, 4, parameter.StageMinWidth},
		{"wide clamps to max", 4000, 4, parameter.StageMaxWidth},
		{"mid range scales", 640, 4, 85},
		{"more stages shrink", 1200, 8, 88},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs := make([]StageDef, tt.stage)
			for i := range defs {
				defs[i] = StageDef{ID: string(rune('a' + i))}
			}
			layout := ComputeLayout(defs, tt.w, 200, 0.5)
			assert.Equal(t, tt.want, layout.Stages[0].Width)
		})
	}
}

func TestComputeLayoutDegenerate(t *testing.T) {
	layout := ComputeLayout(DefaultStages(), 0, 0, parameter.AnchorFraction)
	require.Len(t, layout.Stages, 4)
	for _, st := range layout.Stages {
		assert.Equal(t, vmath.Vec2{}, st.Center)
	}

	links := BuildLinks(layout.Stages)
	require.Len(t, links, 3)
	for _, l := range links {
		assert.Equal(t, parameter.MinLinkLength, l.Length)
		p := l.PointAt(0.5, 0)
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "NaN position on degenerate link")
	}

	neg := ComputeLayout(DefaultStages(), -50, -10, parameter.AnchorFraction)
	assert.Equal(t, 0.0, neg.Width)
	assert.Equal(t, 0.0, neg.Height)

	assert.Empty(t, ComputeLayout(nil, 800, 600, 0.5).Stages)
}

func TestLayoutDiffers(t *testing.T) {
	base := ComputeLayout(DefaultStages(), 1200, 600, parameter.AnchorFraction)

	jitter := ComputeLayout(DefaultStages(), 1201, 600, parameter.AnchorFraction)
	assert.False(t, base.Differs(jitter, parameter.LayoutTolerance), "sub-tolerance jitter must not differ")

	moved := ComputeLayout(DefaultStages(), 1000, 600, parameter.AnchorFraction)
	assert.True(t, base.Differs(moved, parameter.LayoutTolerance))

	fewer := ComputeLayout(DefaultStages()[:3], 1200, 600, parameter.AnchorFraction)
	assert.True(t, base.Differs(fewer, parameter.LayoutTolerance))
}

func TestStageContains(t *testing.T) {
	layout := ComputeLayout(DefaultStages(), 1200, 600, parameter.AnchorFraction)
	st := layout.Stages[1]

	assert.True(t, st.Contains(st.Center))
	assert.True(t, st.Contains(vmath.Vec2{X: 401, Y: 291}))
	assert.False(t, st.Contains(vmath.Vec2{X: 399, Y: 312}))
	assert.False(t, st.Contains(vmath.Vec2{X: 480, Y: 335}))

	assert.Equal(t, 1, layout.StageAt(vmath.Vec2{X: 480, Y: 300}))
	assert.Equal(t, -1, layout.StageAt(vmath.Vec2{X: 600, Y: 312}))
}

func TestBuildLinks(t *testing.T) {
	layout := ComputeLayout(DefaultStages(), 1200, 600, parameter.AnchorFraction)
	links := BuildLinks(layout.Stages)
	require.Len(t, links, 3)

	first := links[0]
	assert.Equal(t, vmath.Vec2{X: 320, Y: 312}, first.Curve.P0)
	assert.Equal(t, vmath.Vec2{X: 400, Y: 312}, first.Curve.P3)
	assert.InDelta(t, 80.0, first.Length, 1e-9)
	assert.Equal(t, "#2563eb", first.Color)

	// First control point arcs up, second down
	assert.InDelta(t, 312-parameter.LinkArcOffset, first.Curve.P1.Y, 1e-9)
	assert.InDelta(t, 312+parameter.LinkArcOffset, first.Curve.P2.Y, 1e-9)

	assert.Nil(t, BuildLinks(layout.Stages[:1]))
}
