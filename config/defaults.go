package config

import (
	"github.com/lixenwraith/flow-banner/flow"
	"github.com/lixenwraith/flow-banner/parameter"
)

// DefaultConfigPath is where the CLI looks for a config file when --config is unset
const DefaultConfigPath = "flow-banner.yaml"

// Default returns the canonical configuration
func Default() *Config {
	stages := make([]StageConfig, 0, 4)
	for _, s := range flow.DefaultStages() {
		stages = append(stages, StageConfig{
			ID:          s.ID,
			Label:       s.Label,
			Description: s.Description,
			Color:       s.Color,
		})
	}

	return &Config{
		Stages: stages,
		Flow: FlowConfig{
			ParticlesPerLink: parameter.ParticlesPerLink,
			RespawnDelayMS:   int(parameter.RespawnDelay.Milliseconds()),
			PopDurationMS:    int(parameter.PopEffectDuration.Milliseconds()),
			HoverRadius:      parameter.HoverRadius,
			StrikeRadius:     parameter.StrikeRadius,
			Anchor:           parameter.AnchorFraction,
		},
		Display: DisplayConfig{
			FPS:        parameter.FrameRate,
			BannerRows: parameter.BannerRows,
			CellWidth:  parameter.CellWidth,
			CellHeight: parameter.CellHeight,
		},
		Sound: true,
		Log: LogConfig{
			Level: "info",
		},
	}
}
