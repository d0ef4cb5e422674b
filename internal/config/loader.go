package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ConfigDirName is the per-user directory under $HOME.
const ConfigDirName = ".life"

// LoadLife loads the configuration.
// Search order: customPath -> ~/.life/configs/life.yaml -> ./configs/life.yaml -> embedded default.
// Only an explicit customPath may fail; the other locations are skipped
// when missing or unparsable.
func LoadLife(customPath string) (LifeConfig, error) {
	if customPath != "" {
		cfg := DefaultLifeConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("life.yaml"), filepath.Join("configs", "life.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, ok := tryLoad(path); ok {
			return cfg, nil
		}
	}

	cfg := DefaultLifeConfig()
	if err := yaml.Unmarshal(defaultLifeYAML, &cfg); err != nil {
		return DefaultLifeConfig(), nil
	}
	return cfg, nil
}

// tryLoad reads and validates a config file, reporting false on any failure.
func tryLoad(path string) (LifeConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LifeConfig{}, false
	}
	cfg := DefaultLifeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LifeConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return LifeConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigDirName, "configs", filename)
}

// Validate checks ranges and normalises derived fields. Board dimensions
// outside [MinSize, MaxSize] are clamped; structural problems are errors.
func (c *LifeConfig) Validate() error {
	b := &c.Board
	if b.MinSize < 1 {
		b.MinSize = 1
	}
	if b.MaxSize < b.MinSize {
		return fmt.Errorf("board.max_size %d is below min_size %d", b.MaxSize, b.MinSize)
	}
	b.Width = clamp(b.Width, b.MinSize, b.MaxSize)
	b.Height = clamp(b.Height, b.MinSize, b.MaxSize)

	t := &c.Tick
	if t.MinIntervalMS < 1 {
		t.MinIntervalMS = 1
	}
	if t.MaxIntervalMS < t.MinIntervalMS {
		return fmt.Errorf("tick.max_interval_ms %d is below min_interval_ms %d", t.MaxIntervalMS, t.MinIntervalMS)
	}
	t.IntervalMS = clamp(t.IntervalMS, t.MinIntervalMS, t.MaxIntervalMS)

	s := &c.Style
	if utf8.RuneCountInString(s.AliveRune) != 1 {
		return fmt.Errorf("style.alive_rune %q must be a single character", s.AliveRune)
	}
	if utf8.RuneCountInString(s.DeadRune) != 1 {
		return fmt.Errorf("style.dead_rune %q must be a single character", s.DeadRune)
	}
	s.CellWidth = clamp(s.CellWidth, 1, 4)

	switch c.Start.Mode {
	case "":
		c.Start.Mode = StartBlank
	case StartBlank, StartRandom:
	case StartPattern:
		if c.Start.Pattern == "" {
			return fmt.Errorf("start.mode is %q but start.pattern is empty", StartPattern)
		}
	default:
		return fmt.Errorf("unknown start.mode %q", c.Start.Mode)
	}
	return nil
}

// ApplySpeedPreset overrides the generation interval with a preset.
// An empty preset leaves the config unchanged.
func ApplySpeedPreset(cfg *LifeConfig, preset SpeedPreset) error {
	if preset == "" {
		return nil
	}
	ms, ok := IntervalForPreset(preset)
	if !ok {
		return fmt.Errorf("config: unknown speed %q (want slow, normal, fast or turbo)", preset)
	}
	cfg.Tick.IntervalMS = clamp(ms, cfg.Tick.MinIntervalMS, cfg.Tick.MaxIntervalMS)
	return nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
