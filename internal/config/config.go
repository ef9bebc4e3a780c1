// Package config provides YAML-based game configuration loading, validation
// and difficulty presets.
package config

import "time"

// Config contains every tunable of a Chromatic Collapse run.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Rules  RulesConfig  `yaml:"rules"`
	Timing TimingConfig `yaml:"timing"`
	Stages []Stage      `yaml:"stages"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// RulesConfig defines chain and scoring parameters.
type RulesConfig struct {
	MinChain         int `yaml:"min_chain"`          // Shortest chain that clears
	PointsPerTile    int `yaml:"points_per_tile"`    // Base points per cleared tile
	ParticlesPerTile int `yaml:"particles_per_tile"` // Particles spawned per cleared tile
}

// TimingConfig defines the clear animation delays.
type TimingConfig struct {
	SettleDelay time.Duration `yaml:"settle_delay"` // Clear -> collapse
	ResumeDelay time.Duration `yaml:"resume_delay"` // Collapse -> playing
}

// Stage is one difficulty tier.
type Stage struct {
	Name         string        `yaml:"name"`
	Target       int           `yaml:"target"`        // Stage score needed to clear
	Colors       int           `yaml:"colors"`        // Palette size in play
	RiseInterval time.Duration `yaml:"rise_interval"` // Time between rising rows
	PrefillRows  int           `yaml:"prefill_rows"`  // Rows filled at stage start
}

// StageCount returns the number of stages.
func (c Config) StageCount() int {
	return len(c.Stages)
}

// Stage returns the stage at the given index (0-based).
// Returns nil if index is out of range.
func (c Config) Stage(index int) *Stage {
	if index < 0 || index >= len(c.Stages) {
		return nil
	}
	return &c.Stages[index]
}

// Points returns the score awarded for a chain of the given length.
// Chains shorter than MinChain score nothing.
func (r RulesConfig) Points(length int) int {
	if length < r.MinChain {
		return 0
	}
	return length * (length - r.MinChain + 1) * r.PointsPerTile
}
