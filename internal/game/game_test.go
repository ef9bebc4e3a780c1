package game

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/chromatic-collapse/internal/board"
	"github.com/vovakirdan/chromatic-collapse/internal/config"
	"github.com/vovakirdan/chromatic-collapse/internal/core"
	"github.com/vovakirdan/chromatic-collapse/internal/storage"
)

var (
	R = core.TileRed
	Y = core.TileYellow
	G = core.TileGreen
	B = core.TileBlue
	E = board.Empty
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

type fakeStore struct {
	high    int
	loadErr error
	saveErr error
	saved   []int
}

func (s *fakeStore) LoadHighScore() (int, error) {
	return s.high, s.loadErr
}

func (s *fakeStore) SaveHighScore(score int) error {
	s.saved = append(s.saved, score)
	if s.saveErr != nil {
		return s.saveErr
	}
	s.high = score
	return nil
}

// smallConfig is a 4x5 board with stages that never rise unless asked to.
func smallConfig(stages ...config.Stage) config.Config {
	cfg := config.DefaultConfig()
	cfg.Board = config.BoardConfig{Rows: 4, Cols: 5}
	if len(stages) == 0 {
		stages = []config.Stage{{Name: "Test", Target: 10000, Colors: 4, RiseInterval: time.Hour, PrefillRows: 1}}
	}
	cfg.Stages = stages
	return cfg
}

func newTestGame(t *testing.T, cfg config.Config) *Game {
	t.Helper()
	g := New(cfg)
	g.SetSource(&board.Cycle{Values: []int{0}})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, Seed: 1})
	return g
}

// startWith starts a run at t0 and replaces the board.
func startWith(t *testing.T, g *Game, rows ...[]core.TileColor) {
	t.Helper()
	press(g, t0, core.ActionConfirm)
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase after confirm = %s, expected playing", g.Phase())
	}
	if len(rows) > 0 {
		g.board = board.FromRows(&board.Cycle{Values: []int{0}}, rows...)
	}
}

func press(g *Game, now time.Time, a core.Action) core.StepResult {
	in := core.NewInputFrame()
	in.Set(a)
	return g.Step(now, in)
}

func idle(g *Game, now time.Time) core.StepResult {
	return g.Step(now, core.NewInputFrame())
}

// drag performs a full press-drag-release gesture in one frame.
func drag(g *Game, now time.Time, cells ...core.Cell) core.StepResult {
	in := core.NewInputFrame()
	if len(cells) > 0 {
		in.Press(cells[0], true)
		for _, c := range cells[1:] {
			in.Drag(c, true)
		}
	}
	in.Release()
	return g.Step(now, in)
}

func countEvents(res core.StepResult, kind core.EventKind) int {
	n := 0
	for _, ev := range res.Events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func findEvent(res core.StepResult, kind core.EventKind) (core.Event, bool) {
	for _, ev := range res.Events {
		if ev.Kind == kind {
			return ev, true
		}
	}
	return core.Event{}, false
}

func testRows() [][]core.TileColor {
	return [][]core.TileColor{
		{E, E, E, E, E},
		{E, E, E, E, E},
		{G, B, B, B, Y},
		{R, R, R, R, R},
	}
}

func row(r int, cols ...int) []core.Cell {
	cells := make([]core.Cell, len(cols))
	for i, c := range cols {
		cells[i] = core.At(r, c)
	}
	return cells
}

func TestChainScoring(t *testing.T) {
	tests := []struct {
		name   string
		chain  []core.Cell
		points int
	}{
		{"three tiles", row(3, 0, 1, 2), 30},
		{"four tiles", row(3, 0, 1, 2, 3), 80},
		{"five tiles", row(3, 0, 1, 2, 3, 4), 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, smallConfig())
			startWith(t, g, testRows()...)

			res := drag(g, t0, tt.chain...)

			if res.State.Score != tt.points {
				t.Errorf("score = %d, expected %d", res.State.Score, tt.points)
			}
			ev, ok := findEvent(res, core.EventChainScored)
			if !ok {
				t.Fatal("expected chain_scored event")
			}
			if ev.Points != tt.points || ev.Count != len(tt.chain) || ev.Color != R || ev.Combo != 1 {
				t.Errorf("chain_scored = %+v", ev)
			}
			if got := countEvents(res, core.EventCellCleared); got != len(tt.chain) {
				t.Errorf("cell_cleared events = %d, expected %d", got, len(tt.chain))
			}
			for _, c := range tt.chain {
				if g.board.Get(c) != E {
					t.Errorf("cell %v not cleared", c)
				}
			}
			if g.Phase() != PhaseClearing {
				t.Errorf("phase = %s, expected clearing", g.Phase())
			}
		})
	}
}

func TestClearedCellEventsCarryParticles(t *testing.T) {
	g := newTestGame(t, smallConfig())
	startWith(t, g, testRows()...)

	res := drag(g, t0, row(2, 1, 2, 3)...)

	for _, ev := range res.Events {
		if ev.Kind != core.EventCellCleared {
			continue
		}
		if ev.Count != 6 || ev.Color != B {
			t.Errorf("cell_cleared = %+v, expected 6 blue particles", ev)
		}
	}
}

func TestShortChainsAreNoOps(t *testing.T) {
	tests := []struct {
		name  string
		chain []core.Cell
	}{
		{"empty gesture", nil},
		{"single tile", row(3, 0)},
		{"two tiles", row(3, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, smallConfig())
			startWith(t, g, testRows()...)
			before := g.board.Snapshot()

			res := drag(g, t0, tt.chain...)

			if res.State.Score != 0 {
				t.Errorf("score = %d, expected 0", res.State.Score)
			}
			if len(res.Events) != 0 {
				t.Errorf("events = %v, expected none", res.Events)
			}
			if !reflect.DeepEqual(g.board.Snapshot(), before) {
				t.Error("board changed after a short chain")
			}
			if g.Phase() != PhasePlaying {
				t.Errorf("phase = %s, expected playing", g.Phase())
			}
		})
	}
}

func TestBeginOnEmptyCellIgnored(t *testing.T) {
	g := newTestGame(t, smallConfig())
	startWith(t, g, testRows()...)

	in := core.NewInputFrame()
	in.Press(core.At(0, 0), true)
	g.Step(t0, in)
	if g.chain.Dragging() {
		t.Error("drag should not begin on an empty cell")
	}

	in = core.NewInputFrame()
	in.Press(core.At(3, 0), false)
	g.Step(t0, in)
	if g.chain.Dragging() {
		t.Error("drag should not begin outside the grid")
	}
}

func TestMixedColorDragStopsAtMismatch(t *testing.T) {
	g := newTestGame(t, smallConfig())
	startWith(t, g, testRows()...)

	// Blue run in row 2, then a detour onto yellow which must be ignored.
	res := drag(g, t0, core.At(2, 1), core.At(2, 2), core.At(2, 3), core.At(2, 4))

	if res.State.Score != 30 {
		t.Errorf("score = %d, expected 30", res.State.Score)
	}
	if g.board.Get(core.At(2, 4)) != Y {
		t.Error("mismatched yellow tile should survive")
	}
}

func TestCollapseTiming(t *testing.T) {
	g := newTestGame(t, smallConfig())
	startWith(t, g, testRows()...)
	drag(g, t0, row(3, 0, 1, 2)...)

	res := idle(g, t0.Add(100*time.Millisecond))
	if countEvents(res, core.EventCollapsed) != 0 {
		t.Fatal("collapsed before the settle delay")
	}
	if g.board.Get(core.At(2, 0)) != G {
		t.Fatal("tiles moved before the settle delay")
	}

	res = idle(g, t0.Add(150*time.Millisecond))
	if countEvents(res, core.EventCollapsed) != 1 {
		t.Fatal("expected collapsed event at the settle delay")
	}
	want := [][]core.TileColor{
		{E, E, E, E, E},
		{E, E, E, E, E},
		{E, E, E, B, Y},
		{G, B, B, R, R},
	}
	if got := g.board.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("board after collapse = %v, expected %v", got, want)
	}
	if g.Phase() != PhaseClearing {
		t.Errorf("phase = %s, expected clearing until resume", g.Phase())
	}

	idle(g, t0.Add(349*time.Millisecond))
	if g.Phase() != PhaseClearing {
		t.Errorf("phase = %s, expected clearing before resume delay", g.Phase())
	}

	idle(g, t0.Add(350*time.Millisecond))
	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %s, expected playing after resume delay", g.Phase())
	}
	if g.combo != 0 {
		t.Errorf("combo = %d, expected reset to 0", g.combo)
	}
}

func TestLateStepRunsWholePipeline(t *testing.T) {
	g := newTestGame(t, smallConfig())
	startWith(t, g, testRows()...)
	drag(g, t0, row(3, 0, 1, 2)...)

	res := idle(g, t0.Add(time.Second))
	if countEvents(res, core.EventCollapsed) != 1 {
		t.Error("expected collapse")
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %s, expected playing", g.Phase())
	}
}

func TestNoChainWhileClearing(t *testing.T) {
	g := newTestGame(t, smallConfig())
	startWith(t, g, testRows()...)
	drag(g, t0, row(3, 0, 1, 2)...)

	res := drag(g, t0.Add(50*time.Millisecond), row(2, 1, 2, 3)...)

	if res.State.Score != 30 {
		t.Errorf("score = %d, expected only the first chain", res.State.Score)
	}
	if g.chain.Dragging() {
		t.Error("no drag may start while clearing")
	}
	if g.board.Get(core.At(2, 2)) != B {
		t.Error("second chain must not clear tiles")
	}
}

func TestStageClearWaitsForSettle(t *testing.T) {
	cfg := smallConfig(
		config.Stage{Name: "One", Target: 30, Colors: 4, RiseInterval: time.Hour, PrefillRows: 1},
		config.Stage{Name: "Two", Target: 100, Colors: 3, RiseInterval: time.Hour, PrefillRows: 2},
	)
	g := newTestGame(t, cfg)
	startWith(t, g, testRows()...)

	res := drag(g, t0, row(3, 0, 1, 2)...)
	if countEvents(res, core.EventStageCleared) != 0 || g.Phase() != PhaseClearing {
		t.Fatalf("stage cleared mid-animation, phase %s", g.Phase())
	}

	idle(g, t0.Add(150*time.Millisecond))
	if g.Phase() != PhaseClearing {
		t.Fatalf("phase = %s after collapse, expected clearing", g.Phase())
	}

	res = idle(g, t0.Add(350*time.Millisecond))
	ev, ok := findEvent(res, core.EventStageCleared)
	if !ok {
		t.Fatal("expected stage_cleared after resume")
	}
	if ev.Stage != 1 || ev.Score != 30 {
		t.Errorf("stage_cleared = %+v", ev)
	}
	if g.Phase() != PhaseStageClear {
		t.Errorf("phase = %s, expected stageclear", g.Phase())
	}

	// Advance keeps the total, resets the stage score and re-deals the board.
	now := t0.Add(2 * time.Second)
	press(g, now, core.ActionConfirm)
	snap := g.Snapshot()
	if snap.Phase != PhasePlaying || snap.Stage != 2 {
		t.Fatalf("after advance: phase %s stage %d", snap.Phase, snap.Stage)
	}
	if snap.StageScore != 0 || snap.TotalScore != 30 || snap.Target != 100 || snap.StageName != "Two" {
		t.Errorf("after advance snapshot = %+v", snap)
	}
	if filled := g.board.CountFilled(); filled != 2*cfg.Board.Cols {
		t.Errorf("filled cells = %d, expected two prefilled rows", filled)
	}
	if !g.lastRise.Equal(now) {
		t.Error("rise clock should restart on stage advance")
	}
}

func TestRiseAfterInterval(t *testing.T) {
	cfg := smallConfig(config.Stage{Name: "Rise", Target: 10000, Colors: 4, RiseInterval: 10 * time.Second, PrefillRows: 1})
	g := newTestGame(t, cfg)
	startWith(t, g, testRows()...)

	res := idle(g, t0.Add(10*time.Second))
	if countEvents(res, core.EventRowRisen) != 0 {
		t.Fatal("rise must wait until the interval is exceeded")
	}

	res = idle(g, t0.Add(10*time.Second+time.Millisecond))
	if countEvents(res, core.EventRowRisen) != 1 {
		t.Fatal("expected row_risen")
	}
	want := [][]core.TileColor{
		{E, E, E, E, E},
		{G, B, B, B, Y},
		{R, R, R, R, R},
		{R, R, R, R, R}, // Cycle source always yields 0
	}
	if got := g.board.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("board after rise = %v, expected %v", got, want)
	}
}

func TestLossOnOccupiedTopRow(t *testing.T) {
	cfg := smallConfig(config.Stage{Name: "Rise", Target: 10000, Colors: 4, RiseInterval: 10 * time.Second, PrefillRows: 1})
	store := &fakeStore{}
	g := newTestGame(t, cfg)
	g.SetHighScoreStore(store)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40})
	startWith(t, g,
		[]core.TileColor{E, E, Y, E, E},
		[]core.TileColor{E, E, Y, E, E},
		[]core.TileColor{G, B, B, B, Y},
		[]core.TileColor{R, R, R, R, R},
	)
	before := g.board.Snapshot()

	res := idle(g, t0.Add(11*time.Second))

	if !res.State.GameOver || g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s, expected gameover", g.Phase())
	}
	ev, ok := findEvent(res, core.EventGameOver)
	if !ok || ev.Stage != 1 {
		t.Errorf("game_over event = %+v, %v", ev, ok)
	}
	if countEvents(res, core.EventRowRisen) != 0 {
		t.Error("no row may rise on loss")
	}
	if !reflect.DeepEqual(g.board.Snapshot(), before) {
		t.Error("board must not shift on loss")
	}
	if len(store.saved) != 0 {
		t.Errorf("zero score should not be saved, saved %v", store.saved)
	}
}

func TestNoRiseWhileClearing(t *testing.T) {
	cfg := smallConfig(config.Stage{Name: "Rise", Target: 10000, Colors: 4, RiseInterval: 100 * time.Millisecond, PrefillRows: 1})
	g := newTestGame(t, cfg)
	startWith(t, g, testRows()...)
	drag(g, t0, row(3, 0, 1, 2)...)

	res := idle(g, t0.Add(120*time.Millisecond))
	if countEvents(res, core.EventRowRisen) != 0 {
		t.Error("rows must not rise while clearing")
	}
}

func TestChainFollowsRisingRow(t *testing.T) {
	cfg := smallConfig(config.Stage{Name: "Rise", Target: 10000, Colors: 4, RiseInterval: 10 * time.Second, PrefillRows: 1})
	g := newTestGame(t, cfg)
	startWith(t, g, testRows()...)

	in := core.NewInputFrame()
	in.Press(core.At(2, 1), true)
	in.Drag(core.At(2, 2), true)
	g.Step(t0.Add(time.Second), in)

	idle(g, t0.Add(11*time.Second))

	want := []core.Cell{core.At(1, 1), core.At(1, 2)}
	if got := g.chain.Chain(); !reflect.DeepEqual(got, want) {
		t.Fatalf("chain after rise = %v, expected %v", got, want)
	}

	in = core.NewInputFrame()
	in.Drag(core.At(1, 3), true)
	in.Release()
	res := g.Step(t0.Add(12*time.Second), in)
	if res.State.Score != 30 {
		t.Errorf("score = %d, expected the shifted chain to clear", res.State.Score)
	}
}

func TestVictoryUpdatesHighScore(t *testing.T) {
	store := &fakeStore{high: 10}
	cfg := smallConfig(config.Stage{Name: "Only", Target: 30, Colors: 4, RiseInterval: time.Hour, PrefillRows: 1})
	g := New(cfg)
	g.SetSource(&board.Cycle{Values: []int{0}})
	g.SetHighScoreStore(store)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40})

	if g.State().HighScore != 10 {
		t.Fatalf("high score = %d, expected loaded 10", g.State().HighScore)
	}

	startWith(t, g, testRows()...)
	drag(g, t0, row(3, 0, 1, 2)...)
	idle(g, t0.Add(time.Second))
	if g.Phase() != PhaseStageClear {
		t.Fatalf("phase = %s, expected stageclear", g.Phase())
	}

	res := press(g, t0.Add(2*time.Second), core.ActionConfirm)

	if !res.State.Won || g.Phase() != PhaseGameClear {
		t.Fatalf("phase = %s, expected gameclear", g.Phase())
	}
	if _, ok := findEvent(res, core.EventGameCleared); !ok {
		t.Error("expected game_cleared event")
	}
	if ev, ok := findEvent(res, core.EventHighScore); !ok || ev.Score != 30 {
		t.Errorf("high_score event = %+v, %v", ev, ok)
	}
	if !reflect.DeepEqual(store.saved, []int{30}) {
		t.Errorf("saved = %v, expected [30]", store.saved)
	}
	if !g.Snapshot().NewHighScore {
		t.Error("snapshot should flag the new high score")
	}
}

func TestHighScorePersistsAcrossResets(t *testing.T) {
	store := &fakeStore{}
	cfg := smallConfig(config.Stage{Name: "Rise", Target: 10000, Colors: 4, RiseInterval: 10 * time.Second, PrefillRows: 1})
	g := New(cfg)
	g.SetSource(&board.Cycle{Values: []int{0}})
	g.SetHighScoreStore(store)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40})

	startWith(t, g,
		[]core.TileColor{Y, E, E, E, E},
		[]core.TileColor{Y, E, E, E, E},
		[]core.TileColor{G, B, B, B, Y},
		[]core.TileColor{R, R, R, R, R},
	)
	// Column 0 stays stacked to the top after the collapse.
	drag(g, t0, row(3, 1, 2, 3, 4)...)
	idle(g, t0.Add(time.Second))
	idle(g, t0.Add(12*time.Second))
	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s, expected gameover", g.Phase())
	}
	if store.high != 80 {
		t.Fatalf("stored high = %d, expected 80", store.high)
	}

	fresh := New(cfg)
	fresh.SetHighScoreStore(store)
	fresh.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40})
	if fresh.State().HighScore != 80 {
		t.Errorf("reloaded high score = %d, expected 80", fresh.State().HighScore)
	}
}

func TestSharedStoreKeepsHigherScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	cfg := smallConfig(config.Stage{Name: "Rise", Target: 10000, Colors: 4, RiseInterval: 10 * time.Second, PrefillRows: 1})
	stacked := [][]core.TileColor{
		{Y, E, E, E, E},
		{Y, E, E, E, E},
		{G, B, B, B, Y},
		{R, R, R, R, R},
	}
	newGame := func() *Game {
		g := New(cfg)
		g.SetSource(&board.Cycle{Values: []int{0}})
		g.SetHighScoreStore(store)
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40})
		startWith(t, g, stacked...)
		return g
	}

	// Both runs start before either has finished.
	a, b := newGame(), newGame()

	drag(b, t0, row(3, 1, 2, 3, 4)...)
	idle(b, t0.Add(time.Second))
	idle(b, t0.Add(12*time.Second))
	if b.Phase() != PhaseGameOver || b.State().Score != 80 {
		t.Fatalf("second game: phase %s score %d, expected gameover with 80", b.Phase(), b.State().Score)
	}

	drag(a, t0, row(3, 1, 2, 3)...)
	idle(a, t0.Add(time.Second))
	res := idle(a, t0.Add(12*time.Second))
	if a.Phase() != PhaseGameOver {
		t.Fatalf("first game: phase %s, expected gameover", a.Phase())
	}
	if _, ok := findEvent(res, core.EventHighScore); ok {
		t.Error("a 30 point run must not announce a high score below 80")
	}
	if a.Snapshot().NewHighScore {
		t.Error("a 30 point run must not be flagged as a new high score")
	}
	if got := a.State().HighScore; got != 80 {
		t.Errorf("first game high score = %d, expected 80 from the store", got)
	}

	high, err := store.LoadHighScore()
	if err != nil {
		t.Fatal(err)
	}
	if high != 80 {
		t.Errorf("persisted high score = %d, expected 80", high)
	}
}

func TestHighScoreStoreFailures(t *testing.T) {
	store := &fakeStore{high: 999, loadErr: errors.New("corrupt")}
	g := New(smallConfig())
	g.SetHighScoreStore(store)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40})

	if g.State().HighScore != 0 {
		t.Errorf("high score = %d, expected 0 on load failure", g.State().HighScore)
	}

	store.saveErr = errors.New("disk full")
	g.totalScore = 50
	g.recordHighScore()
	if g.highScore != 50 {
		t.Errorf("in-memory high score = %d, expected 50 despite save failure", g.highScore)
	}
}

func TestPauseFreezesRiseClock(t *testing.T) {
	cfg := smallConfig(config.Stage{Name: "Rise", Target: 10000, Colors: 4, RiseInterval: 10 * time.Second, PrefillRows: 1})
	g := newTestGame(t, cfg)
	startWith(t, g, testRows()...)

	press(g, t0.Add(time.Second), core.ActionPause)
	if g.Phase() != PhasePaused || !g.State().Paused {
		t.Fatalf("phase = %s, expected paused", g.Phase())
	}
	if p := g.RiseProgress(t0.Add(time.Hour)); p < 0.099 || p > 0.101 {
		t.Errorf("rise progress while paused = %f, expected 0.1", p)
	}

	resumeAt := t0.Add(time.Hour)
	press(g, resumeAt, core.ActionPause)
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase = %s, expected playing", g.Phase())
	}

	res := idle(g, resumeAt.Add(9*time.Second))
	if countEvents(res, core.EventRowRisen) != 0 {
		t.Error("paused time must not count toward the rise interval")
	}
	res = idle(g, resumeAt.Add(9*time.Second+time.Millisecond))
	if countEvents(res, core.EventRowRisen) != 1 {
		t.Error("expected rise once the unpaused interval elapsed")
	}
}

func TestPauseIgnoresPointer(t *testing.T) {
	g := newTestGame(t, smallConfig())
	startWith(t, g, testRows()...)
	press(g, t0, core.ActionPause)

	res := drag(g, t0, row(3, 0, 1, 2)...)
	if res.State.Score != 0 {
		t.Errorf("score = %d, expected no clears while paused", res.State.Score)
	}
}

func TestRestartAndBack(t *testing.T) {
	cfg := smallConfig(config.Stage{Name: "Rise", Target: 10000, Colors: 4, RiseInterval: time.Second, PrefillRows: 1})
	g := newTestGame(t, cfg)
	startWith(t, g,
		[]core.TileColor{Y, E, E, E, E},
		[]core.TileColor{Y, E, E, E, E},
		[]core.TileColor{G, B, B, B, Y},
		[]core.TileColor{R, R, R, R, R},
	)
	drag(g, t0, row(3, 1, 2, 3)...)
	idle(g, t0.Add(2*time.Second))
	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s, expected gameover", g.Phase())
	}

	press(g, t0.Add(3*time.Second), core.ActionRestart)
	snap := g.Snapshot()
	if snap.Phase != PhasePlaying || snap.TotalScore != 0 || snap.Stage != 1 {
		t.Fatalf("after restart snapshot = %+v", snap)
	}
	if snap.HighScore != 30 {
		t.Errorf("high score = %d, expected 30 kept across runs", snap.HighScore)
	}

	// Force a tile into the top row, lose again and go back to the title.
	g.board.Set(core.At(0, 0), R)
	idle(g, t0.Add(5*time.Second))
	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s, expected gameover", g.Phase())
	}
	press(g, t0.Add(6*time.Second), core.ActionBack)
	if g.Phase() != PhaseTitle {
		t.Errorf("phase = %s, expected title", g.Phase())
	}
}

func TestTitleIgnoresPointer(t *testing.T) {
	g := newTestGame(t, smallConfig())

	res := drag(g, t0, row(3, 0, 1, 2)...)
	if res.State.Score != 0 || g.Phase() != PhaseTitle {
		t.Errorf("title should ignore drags, phase %s", g.Phase())
	}
}

func TestDeterministicRun(t *testing.T) {
	play := func() Snapshot {
		g := New(config.DefaultConfig())
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, Seed: 42})
		press(g, t0, core.ActionConfirm)
		for i := 1; i <= 40; i++ {
			idle(g, t0.Add(time.Duration(i)*time.Second))
		}
		return g.Snapshot()
	}

	a, b := play(), play()
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and input should produce identical snapshots")
	}
	if a.Phase != PhasePlaying && a.Phase != PhaseGameOver {
		t.Errorf("unexpected phase %s", a.Phase)
	}
}

func TestTooSmallLetsClearSettle(t *testing.T) {
	cfg := smallConfig(config.Stage{Name: "Rise", Target: 10000, Colors: 4, RiseInterval: 2 * time.Second, PrefillRows: 1})
	g := newTestGame(t, cfg)
	startWith(t, g, testRows()...)

	drag(g, t0, row(3, 0, 1, 2)...)
	if g.Phase() != PhaseClearing {
		t.Fatalf("phase = %s, expected clearing", g.Phase())
	}

	g.Resize(10, 5)
	res := idle(g, t0.Add(400*time.Millisecond))
	if countEvents(res, core.EventCollapsed) != 1 {
		t.Error("collapse should run while the window is too small")
	}
	if g.Phase() != PhasePaused {
		t.Fatalf("phase = %s, expected paused once the clear settled", g.Phase())
	}

	// A long stay at the small size must not count toward the rise.
	g.Resize(80, 40)
	resumeAt := t0.Add(time.Minute)
	press(g, resumeAt, core.ActionPause)
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase = %s, expected playing after resume", g.Phase())
	}
	res = idle(g, resumeAt.Add(time.Second))
	if countEvents(res, core.EventRowRisen) != 0 || g.Phase() != PhasePlaying {
		t.Errorf("row rose right after resume, phase %s", g.Phase())
	}
}

func TestTooSmallPausesPlay(t *testing.T) {
	g := newTestGame(t, smallConfig())
	startWith(t, g, testRows()...)

	g.Resize(10, 5)
	res := idle(g, t0.Add(time.Second))
	if !res.State.Paused || g.Phase() != PhasePaused {
		t.Errorf("phase = %s, expected paused when the window is too small", g.Phase())
	}

	g.Resize(80, 40)
	press(g, t0.Add(2*time.Second), core.ActionPause)
	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %s, expected playing after resume", g.Phase())
	}
}
