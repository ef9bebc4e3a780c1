package game

import (
	"time"

	"github.com/vovakirdan/chromatic-collapse/internal/core"
)

// checkRise pushes a new row in from the bottom once the stage's interval
// has elapsed. If the top row is occupied at that moment the run is lost
// and the board is left untouched.
func (g *Game) checkRise(now time.Time) {
	if g.Phase() != PhasePlaying {
		return
	}
	stage := g.currentStage()
	if stage == nil || now.Sub(g.lastRise) <= stage.RiseInterval {
		return
	}

	g.lastRise = now
	if g.board.IsTopRowOccupied() {
		g.lose()
		return
	}

	g.board.RiseOneRow(stage.Colors)
	g.chain.Shift(-1)
	g.emit(core.Event{Kind: core.EventRowRisen})
	g.log.Debug("row risen", "stage", g.stageIndex+1, "filled", g.board.CountFilled())
}

// RiseProgress returns how far the rise clock has run toward the next row,
// in [0, 1]. The clock reads as frozen while paused.
func (g *Game) RiseProgress(now time.Time) float64 {
	stage := g.currentStage()
	if stage == nil || stage.RiseInterval <= 0 {
		return 0
	}
	switch g.Phase() {
	case PhasePlaying, PhaseClearing:
	case PhasePaused:
		now = g.pausedAt
	default:
		return 0
	}
	return core.ClampF(float64(now.Sub(g.lastRise))/float64(stage.RiseInterval), 0, 1)
}
