package game

import (
	"time"

	"github.com/vovakirdan/chromatic-collapse/internal/core"
)

// clearPipeline tracks the deferred half of a committed chain: the board
// collapses at collapseAt and play resumes at resumeAt.
type clearPipeline struct {
	collapseAt time.Time
	resumeAt   time.Time
	collapsed  bool
}

// scorePopup is the floating "+points" text shown after a commit.
type scorePopup struct {
	points int
	combo  int
	color  core.TileColor
	cell   core.Cell
	until  time.Time
}

const popupDuration = 900 * time.Millisecond

// commit scores and removes a finished chain, then schedules the collapse.
func (g *Game) commit(now time.Time, cells []core.Cell, color core.TileColor) {
	points := g.cfg.Rules.Points(len(cells))
	g.stageScore += points
	g.totalScore += points
	g.combo++

	g.board.Clear(cells)
	for _, c := range cells {
		g.emit(core.Event{
			Kind:  core.EventCellCleared,
			Cell:  c,
			Color: color,
			Count: g.cfg.Rules.ParticlesPerTile,
		})
	}
	g.emit(core.Event{
		Kind:   core.EventChainScored,
		Color:  color,
		Count:  len(cells),
		Points: points,
		Combo:  g.combo,
	})

	g.popup = scorePopup{
		points: points,
		combo:  g.combo,
		color:  color,
		cell:   cells[len(cells)-1],
		until:  now.Add(popupDuration),
	}

	g.clear = clearPipeline{
		collapseAt: now.Add(g.cfg.Timing.SettleDelay),
		resumeAt:   now.Add(g.cfg.Timing.SettleDelay + g.cfg.Timing.ResumeDelay),
	}
	g.fire(evClear)
	g.log.Debug("chain cleared", "length", len(cells), "color", color, "points", points, "stage_score", g.stageScore)
}

// advanceClear runs the collapse and resume steps whose deadlines passed.
func (g *Game) advanceClear(now time.Time) {
	if g.Phase() != PhaseClearing {
		return
	}

	if !g.clear.collapsed && !now.Before(g.clear.collapseAt) {
		g.board.Collapse()
		g.clear.collapsed = true
		g.emit(core.Event{Kind: core.EventCollapsed})
	}

	if g.clear.collapsed && !now.Before(g.clear.resumeAt) {
		g.combo = 0
		g.fire(evSettle)
		g.checkStageClear()
	}
}
