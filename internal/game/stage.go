package game

import (
	"time"

	"github.com/vovakirdan/chromatic-collapse/internal/config"
	"github.com/vovakirdan/chromatic-collapse/internal/core"
)

func (g *Game) currentStage() *config.Stage {
	return g.cfg.Stage(g.stageIndex)
}

// startRun begins a fresh run at the first stage. The high score carries
// over; everything else resets.
func (g *Game) startRun(now time.Time) {
	g.stageIndex = 0
	g.totalScore = 0
	g.newHigh = false
	g.loadStage(now)
	g.fire(evStart)
	g.log.Debug("run started", "stages", g.cfg.StageCount(), "high_score", g.highScore)
}

// loadStage rebuilds the board for the current stage and restarts its clock.
func (g *Game) loadStage(now time.Time) {
	stage := g.currentStage()
	g.board.Initialize(stage.Colors, stage.PrefillRows)
	g.stageScore = 0
	g.combo = 0
	g.lastRise = now
	g.chain.Cancel()
	g.clear = clearPipeline{}
	g.popup = scorePopup{}
}

func (g *Game) checkStageClear() {
	stage := g.currentStage()
	if stage == nil || g.stageScore < stage.Target {
		return
	}
	if g.fire(evTarget) {
		g.chain.Cancel()
		g.emit(core.Event{Kind: core.EventStageCleared, Stage: g.stageIndex + 1, Score: g.totalScore})
	}
}

// advanceStage moves past a cleared stage, or ends the run in victory when
// no stage remains.
func (g *Game) advanceStage(now time.Time) {
	if g.stageIndex+1 >= g.cfg.StageCount() {
		if g.fire(evFinish) {
			g.emit(core.Event{Kind: core.EventGameCleared, Stage: g.stageIndex + 1, Score: g.totalScore})
			g.recordHighScore()
		}
		return
	}

	g.stageIndex++
	g.loadStage(now)
	g.fire(evAdvance)
}

func (g *Game) lose() {
	if !g.fire(evLose) {
		return
	}
	g.chain.Cancel()
	g.emit(core.Event{Kind: core.EventGameOver, Stage: g.stageIndex + 1, Score: g.totalScore})
	g.recordHighScore()
}

// recordHighScore persists the total score if it beats the best so far.
// The stored value is re-read first since other games may share the store.
func (g *Game) recordHighScore() {
	g.refreshHighScore()
	if g.totalScore <= g.highScore {
		return
	}
	g.highScore = g.totalScore
	g.newHigh = true
	g.emit(core.Event{Kind: core.EventHighScore, Score: g.highScore})

	if g.store == nil {
		return
	}
	if err := g.store.SaveHighScore(g.highScore); err != nil {
		g.log.Debug("high score not saved", "err", err)
	}
}

// refreshHighScore raises the cached high score to the persisted one.
func (g *Game) refreshHighScore() {
	if g.store == nil {
		return
	}
	high, err := g.store.LoadHighScore()
	if err != nil {
		g.log.Debug("high score unavailable", "err", err)
		return
	}
	g.highScore = max(g.highScore, high)
}

// StageCount returns the number of configured stages.
func (g *Game) StageCount() int {
	return g.cfg.StageCount()
}
