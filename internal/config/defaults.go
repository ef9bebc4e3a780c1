package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/collapse.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration. It mirrors the
// embedded defaults/collapse.yaml.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Rows: 10,
			Cols: 8,
		},
		Rules: RulesConfig{
			MinChain:         3,
			PointsPerTile:    10,
			ParticlesPerTile: 6,
		},
		Timing: TimingConfig{
			SettleDelay: 150 * time.Millisecond,
			ResumeDelay: 200 * time.Millisecond,
		},
		Stages: []Stage{
			{Name: "Spark", Target: 300, Colors: 4, RiseInterval: 12 * time.Second, PrefillRows: 2},
			{Name: "Glow", Target: 800, Colors: 4, RiseInterval: 10 * time.Second, PrefillRows: 2},
			{Name: "Prism", Target: 1500, Colors: 5, RiseInterval: 9 * time.Second, PrefillRows: 3},
			{Name: "Spectrum", Target: 2500, Colors: 5, RiseInterval: 8 * time.Second, PrefillRows: 3},
			{Name: "Collapse", Target: 4000, Colors: 5, RiseInterval: 7 * time.Second, PrefillRows: 3},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
