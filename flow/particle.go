package flow

import (
	"math"
	"time"

	"github.com/lixenwraith/flow-banner/parameter"
	"github.com/lixenwraith/flow-banner/vmath"
)

// Particle travels its link cyclically; progress T stays in [0, 1)
// A popped particle is frozen and hidden until respawn
type Particle struct {
	Link     int
	T        float64
	Speed    float64 // progress per second
	Size     float64 // radius, px
	Offset   float64 // lateral offset from the curve, px
	Color    string
	Popped   bool
	PoppedAt time.Time

	// Pos is the last evaluated position, hit tests use it
	Pos vmath.Vec2
}

// Advance moves the particle by Speed*dt scaled by mod and wraps past 1
// No-op while popped
func (p *Particle) Advance(dt, mod float64) {
	if p.Popped {
		return
	}
	p.T = wrapProgress(p.T + p.Speed*dt*mod)
}

// Pop freezes the particle at its current position
func (p *Particle) Pop(now time.Time) {
	p.Popped = true
	p.PoppedAt = now
}

// Respawn clears the pop and restarts from the link start
func (p *Particle) Respawn(speed float64) {
	p.Popped = false
	p.PoppedAt = time.Time{}
	p.T = 0
	p.Speed = speed
}

// RespawnDue reports whether a popped particle has waited at least delay
func (p *Particle) RespawnDue(now time.Time, delay time.Duration) bool {
	return p.Popped && now.Sub(p.PoppedAt) >= delay
}

func wrapProgress(t float64) float64 {
	t -= math.Floor(t)
	// Floor rounding can leave exactly 1 for values a hair under an integer
	if t >= 1 || t < 0 {
		return 0
	}
	return t
}

// Generator seeds particles from an instance-owned random source
// Seeding is not reproducible across layouts and nothing should depend on exact positions
type Generator struct {
	rng     *vmath.FastRand
	perLink int
}

// NewGenerator creates a generator placing perLink particles on each link
func NewGenerator(seed uint64, perLink int) *Generator {
	if perLink < 1 {
		perLink = parameter.ParticlesPerLink
	}
	return &Generator{
		rng:     vmath.NewFastRand(seed),
		perLink: perLink,
	}
}

// PerLink returns the particle count per link
func (g *Generator) PerLink() int {
	return g.perLink
}

// Speed draws a fresh speed in [ParticleMinSpeed, ParticleMaxSpeed)
func (g *Generator) Speed() float64 {
	return g.rng.Range(parameter.ParticleMinSpeed, parameter.ParticleMaxSpeed)
}

// Seed builds the particle batch for links
// Initial progress is staggered evenly over [0, 0.9) with up to 0.1 random jitter
func (g *Generator) Seed(links []Link) []Particle {
	particles := make([]Particle, 0, len(links)*g.perLink)
	for _, link := range links {
		for i := 0; i < g.perLink; i++ {
			t := float64(i)/float64(g.perLink)*parameter.ParticleStaggerSpread +
				g.rng.Float64()*(1-parameter.ParticleStaggerSpread)
			p := Particle{
				Link:   link.Index,
				T:      wrapProgress(t),
				Speed:  g.Speed(),
				Size:   g.rng.Range(parameter.ParticleMinSize, parameter.ParticleMaxSize),
				Offset: g.rng.Range(-parameter.ParticleLateralJitter, parameter.ParticleLateralJitter),
				Color:  link.Color,
			}
			p.Pos = link.PointAt(p.T, p.Offset)
			particles = append(particles, p)
		}
	}
	return particles
}
