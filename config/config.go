package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/lucasb-eyer/go-colorful"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/lixenwraith/flow-banner/flow"
	"github.com/lixenwraith/flow-banner/parameter"
)

// EnvPrefix prefixes environment overrides; "__" separates nesting levels
const EnvPrefix = "FLOWBANNER_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FLOWBANNER_*)
// A missing file is not an error
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// FLOWBANNER_DISPLAY__REDUCED_MOTION -> display.reduced_motion
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// A configured stage list replaces the defaults instead of merging into them
	if k.Exists("stages") {
		cfg.Stages = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}

// Save writes the configuration to the given YAML file path
func (c *Config) Save(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// YAML renders the configuration as a YAML document
func (c *Config) YAML() ([]byte, error) {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

// validLevels is the set of recognized log levels
var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains valid values
func (c *Config) Validate() error {
	if len(c.Stages) < 2 {
		return fmt.Errorf("at least 2 stages are required, got %d", len(c.Stages))
	}

	seen := make(map[string]bool, len(c.Stages))
	for i, s := range c.Stages {
		if s.ID == "" {
			return fmt.Errorf("stage %d: id is required", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("stage %d: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = true
		if _, err := colorful.Hex(s.Color); err != nil {
			return fmt.Errorf("stage %q: invalid color %q: must be #rgb or #rrggbb", s.ID, s.Color)
		}
	}

	f := c.Flow
	if f.ParticlesPerLink < 1 || f.ParticlesPerLink > parameter.MaxParticlesPerLink {
		return fmt.Errorf("flow.particles_per_link must be within 1..%d", parameter.MaxParticlesPerLink)
	}
	if f.RespawnDelayMS <= 0 {
		return fmt.Errorf("flow.respawn_delay_ms must be positive")
	}
	if f.PopDurationMS <= 0 {
		return fmt.Errorf("flow.pop_duration_ms must be positive")
	}
	if f.HoverRadius <= 0 || f.StrikeRadius <= 0 {
		return fmt.Errorf("flow.hover_radius and flow.strike_radius must be positive")
	}
	if f.Anchor <= 0 || f.Anchor >= 1 {
		return fmt.Errorf("flow.anchor must be within (0, 1), got %g", f.Anchor)
	}

	d := c.Display
	if d.FPS <= 0 {
		return fmt.Errorf("display.fps must be positive")
	}
	if d.BannerRows != 0 && d.BannerRows < parameter.MinBannerRows {
		return fmt.Errorf("display.banner_rows must be 0 (full screen) or at least %d", parameter.MinBannerRows)
	}
	if d.CellWidth <= 0 || d.CellHeight <= 0 {
		return fmt.Errorf("display.cell_width and display.cell_height must be positive")
	}

	if c.Log.Level != "" && !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}

	return nil
}

// FlowConfig converts the flow settings into scene options
func (c *Config) FlowConfig() flow.Config {
	stages := make([]flow.StageDef, 0, len(c.Stages))
	for _, s := range c.Stages {
		label := s.Label
		if label == "" {
			label = s.ID
		}
		stages = append(stages, flow.StageDef{
			ID:          s.ID,
			Label:       label,
			Description: s.Description,
			Color:       s.Color,
		})
	}

	return flow.Config{
		Stages:           stages,
		ParticlesPerLink: c.Flow.ParticlesPerLink,
		RespawnDelay:     time.Duration(c.Flow.RespawnDelayMS) * time.Millisecond,
		PopDuration:      time.Duration(c.Flow.PopDurationMS) * time.Millisecond,
		HoverRadius:      c.Flow.HoverRadius,
		StrikeRadius:     c.Flow.StrikeRadius,
		Anchor:           c.Flow.Anchor,
	}
}

// FrameInterval is the loop period for the configured frame rate
func (c *Config) FrameInterval() time.Duration {
	if c.Display.FPS <= 0 {
		return parameter.NominalFrameDelta
	}
	return time.Second / time.Duration(c.Display.FPS)
}
