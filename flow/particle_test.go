package flow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/flow-banner/parameter"
)

func TestParticleAdvanceWraps(t *testing.T) {
	p := Particle{T: 0.97, Speed: 0.05}
	p.Advance(1, 1)
	assert.InDelta(t, 0.02, p.T, 1e-9, "progress must wrap, not overflow to 1.02")
}

func TestParticleAdvanceStaysInRange(t *testing.T) {
	gen := NewGenerator(42, 8)
	for i := 0; i < 200; i++ {
		p := Particle{T: gen.rng.Float64(), Speed: gen.Speed()}
		for step := 0; step < 500; step++ {
			p.Advance(0.016*float64(1+step%7), 1+parameter.PhaseAmplitude)
			if p.T < 0 || p.T >= 1 {
				t.Fatalf("progress left [0,1): %v", p.T)
			}
		}
	}
}

func TestParticleAdvanceExactBoundary(t *testing.T) {
	p := Particle{T: 0.5, Speed: 0.5}
	p.Advance(1, 1)
	assert.Equal(t, 0.0, p.T)
}

func TestPoppedParticleFrozen(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p := Particle{T: 0.3, Speed: 1}
	p.Pop(now)
	p.Advance(0.1, 1)
	assert.Equal(t, 0.3, p.T)

	assert.False(t, p.RespawnDue(now.Add(parameter.RespawnDelay-time.Millisecond), parameter.RespawnDelay))
	assert.True(t, p.RespawnDue(now.Add(parameter.RespawnDelay), parameter.RespawnDelay))

	p.Respawn(0.8)
	assert.False(t, p.Popped)
	assert.Equal(t, 0.0, p.T)
	assert.Equal(t, 0.8, p.Speed)
	assert.False(t, p.RespawnDue(now.Add(time.Hour), parameter.RespawnDelay))
}

func TestGeneratorSeed(t *testing.T) {
	layout := ComputeLayout(DefaultStages(), 1200, 600, parameter.AnchorFraction)
	links := BuildLinks(layout.Stages)
	gen := NewGenerator(7, parameter.ParticlesPerLink)

	particles := gen.Seed(links)
	require.Len(t, particles, len(links)*parameter.ParticlesPerLink)

	perLink := map[int][]Particle{}
	for _, p := range particles {
		perLink[p.Link] = append(perLink[p.Link], p)

		assert.GreaterOrEqual(t, p.T, 0.0)
		assert.Less(t, p.T, 1.0)
		assert.GreaterOrEqual(t, p.Speed, parameter.ParticleMinSpeed)
		assert.Less(t, p.Speed, parameter.ParticleMaxSpeed)
		assert.GreaterOrEqual(t, p.Size, parameter.ParticleMinSize)
		assert.LessOrEqual(t, absf(p.Offset), parameter.ParticleLateralJitter)
		assert.Equal(t, links[p.Link].Color, p.Color)
		assert.False(t, p.Popped)
	}

	// Staggered: the k-th particle of a link sits in its own 1/n slot
	for link, ps := range perLink {
		require.Len(t, ps, parameter.ParticlesPerLink, "link %d", link)
		slot := parameter.ParticleStaggerSpread / float64(parameter.ParticlesPerLink)
		for k, p := range ps {
			lo := float64(k) * slot
			assert.GreaterOrEqual(t, p.T, lo, "link %d particle %d", link, k)
			assert.Less(t, p.T, lo+1-parameter.ParticleStaggerSpread+1e-12, "link %d particle %d", link, k)
		}
	}
}

func TestNewGeneratorDefaultsCount(t *testing.T) {
	assert.Equal(t, parameter.ParticlesPerLink, NewGenerator(1, 0).PerLink())
	assert.Equal(t, 22, NewGenerator(1, 22).PerLink())
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
