package config

// Config is the top-level flow-banner configuration
type Config struct {
	Stages  []StageConfig `koanf:"stages" yaml:"stages"`
	Flow    FlowConfig    `koanf:"flow" yaml:"flow"`
	Display DisplayConfig `koanf:"display" yaml:"display"`
	Sound   bool          `koanf:"sound" yaml:"sound"`
	Log     LogConfig     `koanf:"log" yaml:"log"`
}

// StageConfig describes one pipeline stage
type StageConfig struct {
	ID          string `koanf:"id" yaml:"id"`
	Label       string `koanf:"label" yaml:"label"`
	Description string `koanf:"description" yaml:"description"`
	Color       string `koanf:"color" yaml:"color"`
}

// FlowConfig holds particle and hit-test tuning, durations in milliseconds
type FlowConfig struct {
	ParticlesPerLink int     `koanf:"particles_per_link" yaml:"particles_per_link"`
	RespawnDelayMS   int     `koanf:"respawn_delay_ms" yaml:"respawn_delay_ms"`
	PopDurationMS    int     `koanf:"pop_duration_ms" yaml:"pop_duration_ms"`
	HoverRadius      float64 `koanf:"hover_radius" yaml:"hover_radius"`
	StrikeRadius     float64 `koanf:"strike_radius" yaml:"strike_radius"`
	Anchor           float64 `koanf:"anchor" yaml:"anchor"`
	Seed             uint64  `koanf:"seed" yaml:"seed,omitempty"`
}

// DisplayConfig controls the terminal surface
type DisplayConfig struct {
	FPS           int  `koanf:"fps" yaml:"fps"`
	BannerRows    int  `koanf:"banner_rows" yaml:"banner_rows"`
	CellWidth     int  `koanf:"cell_width" yaml:"cell_width"`
	CellHeight    int  `koanf:"cell_height" yaml:"cell_height"`
	ReducedMotion bool `koanf:"reduced_motion" yaml:"reduced_motion"`
	Debug         bool `koanf:"debug" yaml:"debug"`
}

// LogConfig selects the log sink, an empty File disables logging
type LogConfig struct {
	File  string `koanf:"file" yaml:"file"`
	Level string `koanf:"level" yaml:"level"`
}
