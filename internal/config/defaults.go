package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the built-in configuration. It matches the
// embedded defaults/life.yaml and is used when that file cannot be parsed.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Board: BoardConfig{
			Width:   40,
			Height:  40,
			Linked:  true,
			MinSize: 2,
			MaxSize: 250,
		},
		Tick: TickConfig{
			IntervalMS:    333,
			MinIntervalMS: 33,
			MaxIntervalMS: 2000,
		},
		Style: StyleConfig{
			AliveRune:  "█",
			DeadRune:   " ",
			CellWidth:  2,
			AliveColor: "#33FF00",
			DeadColor:  "#000000",
			GridColor:  "#00FF00",
		},
		Start: StartConfig{
			Mode: StartBlank,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLifeYAML
}
