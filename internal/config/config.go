// Package config provides YAML-based configuration loading and speed
// presets for the Game of Life front-end.
package config

// LifeConfig contains all user-tunable settings.
type LifeConfig struct {
	Board BoardConfig `yaml:"board"`
	Tick  TickConfig  `yaml:"tick"`
	Style StyleConfig `yaml:"style"`
	Start StartConfig `yaml:"start"`
}

// BoardConfig defines the grid dimensions and resize limits.
type BoardConfig struct {
	Width   int  `yaml:"width"`
	Height  int  `yaml:"height"`
	Linked  bool `yaml:"linked"` // Resizing one dimension resizes both
	MinSize int  `yaml:"min_size"`
	MaxSize int  `yaml:"max_size"`
}

// TickConfig defines how often a generation is computed.
type TickConfig struct {
	IntervalMS    int  `yaml:"interval_ms"`
	MinIntervalMS int  `yaml:"min_interval_ms"`
	MaxIntervalMS int  `yaml:"max_interval_ms"`
	StartPaused   bool `yaml:"start_paused"`
}

// StyleConfig defines how cells are drawn.
type StyleConfig struct {
	AliveRune  string `yaml:"alive_rune"`
	DeadRune   string `yaml:"dead_rune"`
	CellWidth  int    `yaml:"cell_width"` // Terminal columns per cell
	AliveColor string `yaml:"alive_color"`
	DeadColor  string `yaml:"dead_color"`
	GridColor  string `yaml:"grid_color"`
}

// StartConfig selects the initial board.
type StartConfig struct {
	Mode    string `yaml:"mode"`    // "blank", "random" or "pattern"
	Pattern string `yaml:"pattern"` // Built-in ID or file path when Mode is "pattern"
}

// Start modes.
const (
	StartBlank   = "blank"
	StartRandom  = "random"
	StartPattern = "pattern"
)

// SpeedPreset is a named generation interval.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
	SpeedTurbo  SpeedPreset = "turbo"
)
