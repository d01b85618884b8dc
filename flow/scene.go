package flow

import (
	"math"
	"time"

	"github.com/lixenwraith/flow-banner/parameter"
	"github.com/lixenwraith/flow-banner/vmath"
)

// ClickResult reports what a click did, both fields may be set by the same click
type ClickResult struct {
	// Popped is the index of the popped particle, -1 if none
	Popped int
	// Stage is the index of the clicked stage, -1 if none
	Stage int
	// Section is the clicked stage id, empty if none
	Section string
	// Link is the popped particle's link, valid when Popped >= 0
	Link int
}

// Stats is a snapshot of scene counters
type Stats struct {
	Links     int
	Particles int
	Popped    int
	Effects   int
	Frames    uint64
	Reseeds   int
}

// Scene owns all animation state of one banner instance
// Not safe for concurrent use; every call must come from the owner's loop goroutine
type Scene struct {
	cfg Config
	gen *Generator

	layout    Layout
	hasLayout bool
	links     []Link
	particles []Particle
	effects   []PopEffect

	pointer       Pointer
	hoverStage    int
	hoverParticle bool

	// static scenes draw no particles, so clicks and hover ignore them
	static bool

	start   time.Time
	last    time.Time
	frames  uint64
	reseeds int
}

// NewScene creates an empty scene, call Resize before the first Update
func NewScene(cfg Config, seed uint64) *Scene {
	cfg = cfg.withDefaults()
	return &Scene{
		cfg:        cfg,
		gen:        NewGenerator(seed, cfg.ParticlesPerLink),
		pointer:    FarAway(),
		hoverStage: -1,
	}
}

// SetStatic switches particle interaction off while particles are not drawn
func (s *Scene) SetStatic(on bool) {
	s.static = on
	s.refreshHover()
}

// Static reports whether particle interaction is off
func (s *Scene) Static() bool {
	return s.static
}

// Config returns the effective configuration
func (s *Scene) Config() Config {
	return s.cfg
}

// Resize recomputes the layout for a w x h surface
// Particles are reseeded only when geometry moved beyond tolerance; returns true on reseed
func (s *Scene) Resize(w, h float64) bool {
	layout := ComputeLayout(s.cfg.Stages, w, h, s.cfg.Anchor)
	if s.hasLayout && !layout.Differs(s.layout, s.cfg.Tolerance) {
		// Keep size current for callers mapping coordinates, geometry is unchanged
		s.layout.Width, s.layout.Height = layout.Width, layout.Height
		return false
	}

	s.layout = layout
	s.hasLayout = true
	s.links = BuildLinks(layout.Stages)
	s.particles = s.gen.Seed(s.links)
	s.effects = s.effects[:0]
	s.reseeds++
	s.refreshHover()
	return true
}

// Update advances the simulation to now
// Order: advance active particles, respawn expired pops, prune ring effects
func (s *Scene) Update(now time.Time) {
	var dt time.Duration
	if s.last.IsZero() {
		s.start = now
		dt = parameter.NominalFrameDelta
	} else {
		dt = now.Sub(s.last)
	}
	if dt < 0 {
		dt = 0
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}
	s.last = now
	s.frames++

	elapsed := now.Sub(s.start).Seconds()
	step := dt.Seconds()

	for i := range s.particles {
		p := &s.particles[i]
		if p.Popped {
			continue
		}
		p.Advance(step, s.phase(elapsed, p.Link))
		p.Pos = s.links[p.Link].PointAt(p.T, p.Offset)
	}

	for i := range s.particles {
		p := &s.particles[i]
		if !p.RespawnDue(now, s.cfg.RespawnDelay) {
			continue
		}
		p.Respawn(s.gen.Speed())
		p.Pos = s.links[p.Link].PointAt(p.T, p.Offset)
	}

	kept := s.effects[:0]
	for _, e := range s.effects {
		if !e.Expired(now, s.cfg.PopDuration) {
			kept = append(kept, e)
		}
	}
	s.effects = kept

	s.refreshHover()
}

// phase is the per-link speed modulation, always positive
func (s *Scene) phase(elapsed float64, link int) float64 {
	return 1 + parameter.PhaseAmplitude*math.Sin(elapsed*parameter.PhaseRate+float64(link)*parameter.PhaseLinkShift)
}

// PointerMove records the pointer and refreshes hover state
func (s *Scene) PointerMove(p vmath.Vec2) {
	s.pointer = Pointer{Pos: p, Present: true}
	s.refreshHover()
}

// PointerLeave resets the pointer to the far away sentinel and hides the tooltip
func (s *Scene) PointerLeave() {
	s.pointer = FarAway()
	s.hoverStage = -1
	s.hoverParticle = false
}

// Click pops at most one particle, the nearest within strike radius,
// and independently reports the stage under the pointer for navigation
// A static scene only reports the stage
func (s *Scene) Click(p vmath.Vec2, now time.Time) ClickResult {
	s.PointerMove(p)
	res := ClickResult{Popped: -1, Stage: -1}

	best := -1
	bestDist := s.cfg.StrikeRadius * s.cfg.StrikeRadius
	for i := range s.particles {
		if s.static || s.particles[i].Popped {
			continue
		}
		if d := vmath.V2DistSq(s.particles[i].Pos, p); d < bestDist {
			best = i
			bestDist = d
		}
	}

	if best >= 0 {
		target := &s.particles[best]
		target.Pop(now)
		s.effects = append(s.effects, PopEffect{
			Pos:    target.Pos,
			Start:  now,
			Radius: target.Size,
			Color:  target.Color,
		})
		res.Popped = best
		res.Link = target.Link
	}

	if idx := s.layout.StageAt(p); idx >= 0 {
		res.Stage = idx
		res.Section = s.layout.Stages[idx].ID
	}

	s.refreshHover()
	return res
}

func (s *Scene) refreshHover() {
	if !s.pointer.Present {
		s.hoverStage = -1
		s.hoverParticle = false
		return
	}
	s.hoverStage = s.layout.StageAt(s.pointer.Pos)

	s.hoverParticle = false
	if s.static {
		return
	}
	r2 := s.cfg.HoverRadius * s.cfg.HoverRadius
	for i := range s.particles {
		if s.particles[i].Popped {
			continue
		}
		if vmath.V2DistSq(s.particles[i].Pos, s.pointer.Pos) < r2 {
			s.hoverParticle = true
			return
		}
	}
}

// Tooltip returns the hovered stage, if any
func (s *Scene) Tooltip() (Stage, bool) {
	if s.hoverStage < 0 || s.hoverStage >= len(s.layout.Stages) {
		return Stage{}, false
	}
	return s.layout.Stages[s.hoverStage], true
}

// PointerOverParticle reports whether the pointer is near a live particle
func (s *Scene) PointerOverParticle() bool {
	return s.hoverParticle
}

// Pointer returns the current pointer state
func (s *Scene) Pointer() Pointer {
	return s.pointer
}

// Layout returns the current layout
func (s *Scene) Layout() Layout {
	return s.layout
}

// Links returns the current links, callers must not modify
func (s *Scene) Links() []Link {
	return s.links
}

// Particles returns the particle batch, callers must not modify
func (s *Scene) Particles() []Particle {
	return s.particles
}

// Effects returns the live pop effects, callers must not modify
func (s *Scene) Effects() []PopEffect {
	return s.effects
}

// Stats returns current counters
func (s *Scene) Stats() Stats {
	st := Stats{
		Links:     len(s.links),
		Particles: len(s.particles),
		Effects:   len(s.effects),
		Frames:    s.frames,
		Reseeds:   s.reseeds,
	}
	for i := range s.particles {
		if s.particles[i].Popped {
			st.Popped++
		}
	}
	return st
}
