package flow

import (
	"time"

	"github.com/lixenwraith/flow-banner/parameter"
)

// Config holds the recognized scene options, zero fields take defaults
type Config struct {
	Stages           []StageDef
	ParticlesPerLink int
	RespawnDelay     time.Duration
	PopDuration      time.Duration
	HoverRadius      float64
	StrikeRadius     float64
	Anchor           float64
	Tolerance        float64
}

// DefaultStages is the process -> data -> model -> business pipeline
func DefaultStages() []StageDef {
	return []StageDef{
		{ID: "process", Label: "Process", Color: "#2563eb",
			Description: "We start with your problem and map how the work actually flows today."},
		{ID: "data", Label: "Data", Color: "#0ea5a4",
			Description: "We find out what your data can and cannot tell you."},
		{ID: "model", Label: "Model", Color: "#7c3aed",
			Description: "Technology and AI where they earn their place, nothing more."},
		{ID: "business", Label: "Business", Color: "#ef4444",
			Description: "Success is measured by whether the original problem got solved."},
	}
}

// DefaultConfig returns the canonical parameter set
func DefaultConfig() Config {
	return Config{
		Stages:           DefaultStages(),
		ParticlesPerLink: parameter.ParticlesPerLink,
		RespawnDelay:     parameter.RespawnDelay,
		PopDuration:      parameter.PopEffectDuration,
		HoverRadius:      parameter.HoverRadius,
		StrikeRadius:     parameter.StrikeRadius,
		Anchor:           parameter.AnchorFraction,
		Tolerance:        parameter.LayoutTolerance,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if len(c.Stages) == 0 {
		c.Stages = d.Stages
	}
	if c.ParticlesPerLink <= 0 {
		c.ParticlesPerLink = d.ParticlesPerLink
	}
	if c.RespawnDelay <= 0 {
		c.RespawnDelay = d.RespawnDelay
	}
	if c.PopDuration <= 0 {
		c.PopDuration = d.PopDuration
	}
	if c.HoverRadius <= 0 {
		c.HoverRadius = d.HoverRadius
	}
	if c.StrikeRadius <= 0 {
		c.StrikeRadius = d.StrikeRadius
	}
	if c.Anchor <= 0 || c.Anchor >= 1 {
		c.Anchor = d.Anchor
	}
	if c.Tolerance <= 0 {
		c.Tolerance = d.Tolerance
	}
	return c
}
