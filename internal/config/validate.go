package config

import (
	"fmt"

	"github.com/vovakirdan/chromatic-collapse/internal/core"
)

// ValidationError contains details about an invalid configuration.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	if c.Board.Rows < 2 || c.Board.Cols < 1 {
		return ValidationError{
			Code:    "BOARD_SIZE",
			Message: fmt.Sprintf("board must be at least 2x1, got %dx%d", c.Board.Rows, c.Board.Cols),
		}
	}
	if c.Rules.MinChain < 1 {
		return ValidationError{
			Code:    "MIN_CHAIN",
			Message: fmt.Sprintf("min_chain must be positive, got %d", c.Rules.MinChain),
		}
	}
	if c.Rules.PointsPerTile < 0 {
		return ValidationError{
			Code:    "POINTS",
			Message: fmt.Sprintf("points_per_tile must not be negative, got %d", c.Rules.PointsPerTile),
		}
	}
	if c.Timing.SettleDelay < 0 || c.Timing.ResumeDelay < 0 {
		return ValidationError{
			Code:    "TIMING",
			Message: "clear delays must not be negative",
		}
	}
	if len(c.Stages) == 0 {
		return ValidationError{
			Code:    "NO_STAGES",
			Message: "at least one stage is required",
		}
	}

	for i, s := range c.Stages {
		if err := s.validate(i, c.Board.Rows); err != nil {
			return err
		}
	}
	return nil
}

func (s Stage) validate(index, rows int) error {
	name := fmt.Sprintf("stage %d", index+1)
	if s.Name != "" {
		name = fmt.Sprintf("stage %d (%s)", index+1, s.Name)
	}

	switch {
	case s.Target <= 0:
		return ValidationError{
			Code:    "STAGE_TARGET",
			Message: fmt.Sprintf("%s: target must be positive, got %d", name, s.Target),
		}
	case s.Colors < 1 || s.Colors > core.PaletteSize:
		return ValidationError{
			Code:    "STAGE_COLORS",
			Message: fmt.Sprintf("%s: colors must be in [1,%d], got %d", name, core.PaletteSize, s.Colors),
		}
	case s.RiseInterval <= 0:
		return ValidationError{
			Code:    "STAGE_RISE",
			Message: fmt.Sprintf("%s: rise_interval must be positive, got %s", name, s.RiseInterval),
		}
	case s.PrefillRows < 0 || s.PrefillRows >= rows:
		return ValidationError{
			Code:    "STAGE_PREFILL",
			Message: fmt.Sprintf("%s: prefill_rows must be in [0,%d), got %d", name, rows, s.PrefillRows),
		}
	}
	return nil
}
