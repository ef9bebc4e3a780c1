// Package game implements the Chromatic Collapse engine: chain commits,
// the delayed collapse pipeline, rising rows and stage progression.
//
// Game is single-threaded. Step is the only mutator and takes the current
// time explicitly, so every deferred action is a deadline compared against
// now rather than a timer.
package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"

	"github.com/vovakirdan/chromatic-collapse/internal/board"
	"github.com/vovakirdan/chromatic-collapse/internal/config"
	"github.com/vovakirdan/chromatic-collapse/internal/core"
	"github.com/vovakirdan/chromatic-collapse/internal/selection"
)

// HighScoreStore persists the best total score across runs.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// Game is one Chromatic Collapse session: title screen, runs and restarts.
type Game struct {
	cfg   config.Config
	log   *log.Logger
	store HighScoreStore
	src   board.Source // Overrides the seeded generator when set

	board *board.Board
	chain *selection.Tracker
	phase *fsm.FSM
	tick  uint64
	now   time.Time // Time of the latest step, used by Render

	stageIndex int
	stageScore int
	totalScore int
	combo      int
	highScore  int
	newHigh    bool

	lastRise time.Time
	pausedAt time.Time
	clear    clearPipeline
	popup    scorePopup

	screenW  int
	screenH  int
	tooSmall bool
	grid     gridLayout

	events []core.Event
}

// New creates a game for the given configuration. The config is assumed
// to be validated.
func New(cfg config.Config) *Game {
	g := &Game{
		cfg:   cfg,
		log:   log.New(io.Discard),
		chain: selection.New(),
	}
	g.phase = newPhaseMachine(g.onPhaseEnter)
	return g
}

// SetLogger routes debug output. A nil logger discards.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.log = l
}

// SetHighScoreStore sets where the high score is loaded from and saved to.
func (g *Game) SetHighScoreStore(s HighScoreStore) {
	g.store = s
}

// SetSource replaces the seeded random generator on the next Reset.
func (g *Game) SetSource(src board.Source) {
	g.src = src
}

// Reset returns to the title screen with a fresh board and reloads the
// high score.
func (g *Game) Reset(rc core.RuntimeConfig) {
	var src board.Source = board.NewRand(rc.Seed)
	if g.src != nil {
		src = g.src
	}
	g.board = board.New(g.cfg.Board.Rows, g.cfg.Board.Cols, src)
	g.chain.Cancel()
	g.phase.SetState(string(PhaseTitle))
	g.tick = 0
	g.now = time.Time{}
	g.stageIndex = 0
	g.stageScore = 0
	g.totalScore = 0
	g.combo = 0
	g.newHigh = false
	g.clear = clearPipeline{}
	g.popup = scorePopup{}
	g.loadHighScore()
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize adapts the layout to a new terminal size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.grid = newGridLayout(w, h, g.cfg.Board.Rows, g.cfg.Board.Cols)
	g.tooSmall = w < g.grid.minW || h < g.grid.minH
}

func (g *Game) loadHighScore() {
	g.highScore = 0
	if g.store == nil {
		return
	}
	high, err := g.store.LoadHighScore()
	if err != nil {
		g.log.Debug("high score unavailable", "err", err)
		return
	}
	g.highScore = high
}

// Step advances the game to now, applying the frame's input.
func (g *Game) Step(now time.Time, in core.InputFrame) core.StepResult {
	g.tick++
	g.now = now
	g.events = g.events[:0]

	// A clear in flight settles on schedule even while the window is too
	// small; play then pauses so the rise clock stops.
	g.advanceClear(now)
	if g.tooSmall {
		if g.Phase() == PhasePlaying {
			g.pause(now)
		}
		return g.result()
	}

	g.checkRise(now)
	for _, ev := range in.Pointer {
		g.handlePointer(ev)
	}
	g.handleActions(now, in)

	return g.result()
}

func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) emit(ev core.Event) {
	g.events = append(g.events, ev)
}

func (g *Game) handlePointer(ev core.PointerEvent) {
	if g.Phase() != PhasePlaying {
		if ev.Kind == core.PointerEnd {
			g.chain.Cancel()
		}
		return
	}

	switch ev.Kind {
	case core.PointerBegin:
		if !ev.InGrid {
			return
		}
		color := g.board.Get(ev.Cell)
		if color == board.Empty {
			return
		}
		g.chain.Begin(ev.Cell, color)
	case core.PointerMove:
		if !ev.InGrid || !g.chain.Dragging() {
			return
		}
		g.chain.Extend(ev.Cell, g.board.Get(ev.Cell))
	case core.PointerEnd:
		cells, color := g.chain.End()
		if len(cells) < g.cfg.Rules.MinChain {
			return
		}
		g.commit(g.now, cells, color)
	}
}

func (g *Game) handleActions(now time.Time, in core.InputFrame) {
	switch g.Phase() {
	case PhaseTitle:
		if in.Has(core.ActionConfirm) {
			g.startRun(now)
		}
	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.pause(now)
		}
	case PhasePaused:
		if in.Has(core.ActionPause) || in.Has(core.ActionConfirm) {
			g.resume(now)
		}
	case PhaseStageClear:
		if in.Has(core.ActionConfirm) {
			g.advanceStage(now)
		}
	case PhaseGameOver, PhaseGameClear:
		switch {
		case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
			g.startRun(now)
		case in.Has(core.ActionBack):
			g.fire(evTitle)
		}
	}
}

func (g *Game) pause(now time.Time) {
	if g.fire(evPause) {
		g.chain.Cancel()
		g.pausedAt = now
	}
}

// resume shifts the rise clock by the paused duration.
func (g *Game) resume(now time.Time) {
	if g.fire(evResume) {
		g.lastRise = g.lastRise.Add(now.Sub(g.pausedAt))
	}
}

func (g *Game) onPhaseEnter(from, to Phase) {
	g.log.Debug("phase", "from", from, "to", to, "stage", g.stageIndex+1, "score", g.totalScore)
}

// State returns the coarse game state.
func (g *Game) State() core.GameState {
	phase := g.Phase()
	return core.GameState{
		Score:     g.totalScore,
		HighScore: g.highScore,
		Stage:     g.stageIndex + 1,
		GameOver:  phase == PhaseGameOver,
		Won:       phase == PhaseGameClear,
		Paused:    phase == PhasePaused || phase == PhaseStageClear || g.tooSmall,
	}
}

// Rows returns the board height.
func (g *Game) Rows() int {
	return g.cfg.Board.Rows
}

// Cols returns the board width.
func (g *Game) Cols() int {
	return g.cfg.Board.Cols
}

// CellAt maps a screen position to a board cell using the current layout.
func (g *Game) CellAt(x, y int) (core.Cell, bool) {
	return g.grid.cellAt(x, y)
}

// ScreenPos returns the screen position of a cell's left glyph.
func (g *Game) ScreenPos(c core.Cell) (x, y int) {
	return g.grid.cellPos(c)
}

// Selecting reports whether a chain drag is in progress.
func (g *Game) Selecting() bool {
	return g.chain.Dragging()
}
