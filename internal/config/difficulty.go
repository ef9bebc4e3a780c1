package config

import (
	"fmt"
	"strings"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// RiseFactorForPreset returns the multiplier applied to every rise interval.
func RiseFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.7
	default:
		return 1.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Easy also gives one extra empty row of headroom by trimming prefill.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	factor := RiseFactorForPreset(preset)
	stages := make([]Stage, len(cfg.Stages))
	for i, s := range cfg.Stages {
		s.RiseInterval = time.Duration(float64(s.RiseInterval) * factor).Round(time.Millisecond)
		if preset == DifficultyEasy && s.PrefillRows > 1 {
			s.PrefillRows--
		}
		stages[i] = s
	}
	cfg.Stages = stages
}
