package parameter

import "time"

// Stage geometry, logical pixels
const (
	// StageHeight is the fixed stage box height
	StageHeight = 44.0
	// StageMinWidth/StageMaxWidth clamp the computed stage width
	StageMinWidth = 80.0
	StageMaxWidth = 160.0
	// StageWidthGapRatio is the share of the inter-stage gap a stage box occupies before clamping
	StageWidthGapRatio = 2.0 / 3.0
	// AnchorFraction is the vertical stage line position as a fraction of surface height
	AnchorFraction = 0.52
	// LayoutTolerance is the max per-field geometry drift (px) that does not reseed particles
	LayoutTolerance = 2.0
	// MinLinkLength keeps degenerate links from dividing by zero
	MinLinkLength = 1.0
)

// Link curve
const (
	// LinkArcOffset is the perpendicular control point offset producing the gentle S arc
	LinkArcOffset = 28.0
	// LinkControlNear/LinkControlFar place control points along the link
	LinkControlNear = 0.33
	LinkControlFar  = 0.66
	// LinkSamples is the number of segments used when plotting a guide curve
	LinkSamples = 96
)

// Particles
const (
	// ParticlesPerLink is the particle count seeded on every link
	ParticlesPerLink = 6
	// MaxParticlesPerLink bounds configured density
	MaxParticlesPerLink = 64
	// ParticleMinSpeed/ParticleMaxSpeed bound progress per second
	ParticleMinSpeed = 0.4
	ParticleMaxSpeed = 1.4
	// ParticleMinSize/ParticleMaxSize bound particle radius (px)
	ParticleMinSize = 4.0
	ParticleMaxSize = 6.0
	// ParticleLateralJitter is the max perpendicular offset from the link curve (px)
	ParticleLateralJitter = 6.0
	// ParticleStaggerSpread is the share of [0,1) used for even staggering, the rest is random jitter
	ParticleStaggerSpread = 0.9

	// PhaseAmplitude modulates speed per link so links do not pulse in lockstep, must stay below 1
	PhaseAmplitude = 0.25
	// PhaseRate is the modulation angular rate (rad/sec)
	PhaseRate = 1.7
	// PhaseLinkShift offsets modulation phase per link index (rad)
	PhaseLinkShift = 1.1

	// MaxFrameDelta caps a single simulation step after a stall
	MaxFrameDelta = 100 * time.Millisecond
	// NominalFrameDelta is used for the first frame when no previous timestamp exists
	NominalFrameDelta = 16 * time.Millisecond
)

// Pop / respawn
const (
	// RespawnDelay is the time a popped particle stays hidden
	RespawnDelay = 1100 * time.Millisecond
	// PopEffectDuration is the lifetime of the expanding ring
	PopEffectDuration = 520 * time.Millisecond
	// PopRingGrowth is the ring radius multiplier reached at end of life
	PopRingGrowth = 3.0
)

// Interaction, logical pixels
const (
	// HoverRadius switches pointer affordance when near a particle
	HoverRadius = 12.0
	// StrikeRadius is the max distance for a click to pop a particle
	StrikeRadius = 16.0
	// PointerFarAway is the sentinel coordinate for an absent pointer
	PointerFarAway = -9999.0
)
