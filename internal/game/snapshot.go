package game

import (
	"time"

	"github.com/vovakirdan/chromatic-collapse/internal/core"
)

// Snapshot captures the complete game state for determinism testing and
// for presentation layers that draw the board themselves.
type Snapshot struct {
	Tick         uint64
	Phase        Phase
	Stage        int // 1-indexed
	StageCount   int
	StageName    string
	StageScore   int
	Target       int
	TotalScore   int
	Combo        int
	HighScore    int
	NewHighScore bool
	Board        [][]core.TileColor
	Chain        []core.Cell
	ChainColor   core.TileColor
	RiseProgress float64
}

// Snapshot returns the current game snapshot, with rise progress measured
// at the latest step.
func (g *Game) Snapshot() Snapshot {
	return g.SnapshotAt(g.now)
}

// SnapshotAt returns the current game snapshot with rise progress measured
// at now.
func (g *Game) SnapshotAt(now time.Time) Snapshot {
	s := Snapshot{
		Tick:         g.tick,
		Phase:        g.Phase(),
		Stage:        g.stageIndex + 1,
		StageCount:   g.cfg.StageCount(),
		StageScore:   g.stageScore,
		TotalScore:   g.totalScore,
		Combo:        g.combo,
		HighScore:    g.highScore,
		NewHighScore: g.newHigh,
		Board:        g.board.Snapshot(),
		Chain:        g.chain.Chain(),
		ChainColor:   g.chain.Color(),
		RiseProgress: g.RiseProgress(now),
	}
	if stage := g.currentStage(); stage != nil {
		s.StageName = stage.Name
		s.Target = stage.Target
	}
	return s
}
