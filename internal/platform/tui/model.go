package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chromatic-collapse/internal/core"
	"github.com/vovakirdan/chromatic-collapse/internal/game"
	"github.com/vovakirdan/chromatic-collapse/internal/storage"
)

// ModelOptions carries per-session settings for a game model.
type ModelOptions struct {
	Player     string      // Recorded with each run
	Difficulty string      // Recorded with each run
	Logger     *log.Logger // Nil discards
	Embedded   bool        // Back on the title screen leaves the model instead of quitting
}

// Model is the Bubble Tea model for a Chromatic Collapse session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       ModelOptions
	log        *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	pointer    *PointerMapper
	particles  *ParticleSystem
	help       help.Model

	cursor     core.Cell
	showCursor bool // Keyboard play in use
	keyDrag    bool // Chain started with the select key

	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g.SetLogger(logger)
	if store != nil {
		g.SetHighScoreStore(store)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		opts:       opts,
		log:        logger,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		pointer:    &PointerMapper{},
		particles:  NewParticleSystem(cfg.Seed),
		help:       h,
		cursor:     core.At(g.Rows()-1, g.Cols()/2),
	}
}

// gameHeight leaves the bottom line for the key help.
func gameHeight(h int) int {
	return max(h-1, 0)
}

func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.pointer.MapMouse(msg, m.game, &m.inputFrame) {
			m.showCursor = false
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if dr, dc, ok := m.keyMapper.MapCursor(msg); ok {
		m.moveCursor(dr, dc)
		return m, nil
	}

	if key.Matches(msg, m.keyMapper.Keys().Select) {
		m.toggleKeyDrag()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.recordAbandoned()
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack && m.game.Phase() == game.PhaseTitle {
		m.backToMenu = true
		if !m.opts.Embedded {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m *Model) moveCursor(dr, dc int) {
	m.showCursor = true
	m.cursor = core.At(
		core.Clamp(m.cursor.Row+dr, 0, m.game.Rows()-1),
		core.Clamp(m.cursor.Col+dc, 0, m.game.Cols()-1),
	)
	if m.keyDrag {
		m.inputFrame.Drag(m.cursor, true)
	}
}

func (m *Model) toggleKeyDrag() {
	m.showCursor = true
	if m.keyDrag {
		m.inputFrame.Release()
		m.keyDrag = false
		return
	}
	m.inputFrame.Press(m.cursor, true)
	m.keyDrag = true
}

// handleResize keeps the run going and only adapts the layout.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.game.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width
	m.particles.Clear()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	result := m.game.Step(now, m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.handleEvent(ev)
	}
	m.particles.Update()

	// A keyboard chain the game refused or finished is no longer held.
	m.keyDrag = m.keyDrag && m.game.Selecting()

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) handleEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventCellCleared:
		x, y := m.game.ScreenPos(ev.Cell)
		m.particles.Spawn(float64(x)+0.5, float64(y), ev.Color.Highlight(), ev.Count)
	case core.EventStageCleared:
		m.log.Info("stage cleared", "player", m.opts.Player, "stage", ev.Stage, "score", ev.Score)
	case core.EventHighScore:
		m.log.Info("new high score", "player", m.opts.Player, "score", ev.Score)
	case core.EventGameOver:
		m.saveRun(storage.OutcomeGameOver, ev.Stage, ev.Score)
	case core.EventGameCleared:
		m.saveRun(storage.OutcomeCleared, ev.Stage, ev.Score)
	}
}

// recordAbandoned saves a run that is quit mid-way.
func (m *Model) recordAbandoned() {
	state := m.game.State()
	if state.Finished() || m.game.Phase() == game.PhaseTitle {
		return
	}
	m.saveRun(storage.OutcomeAbandoned, state.Stage, state.Score)
}

func (m *Model) saveRun(outcome string, stage, score int) {
	m.log.Info("run finished", "player", m.opts.Player, "outcome", outcome, "stage", stage, "score", score)
	if m.store == nil || score <= 0 {
		return
	}
	_, err := m.store.SaveRun(storage.RunRecord{
		Player:     m.opts.Player,
		Score:      score,
		Stage:      stage,
		Outcome:    outcome,
		Difficulty: m.opts.Difficulty,
	})
	if err != nil {
		m.log.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".collapse", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("collapse_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.particles.Draw(m.screen)
	m.drawCursor()

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

func (m Model) drawCursor() {
	if !m.showCursor || m.game.Phase() != game.PhasePlaying {
		return
	}
	x, y := m.game.ScreenPos(m.cursor)
	c := core.ColorBrightWhite
	if m.keyDrag {
		c = core.ColorBrightYellow
	}
	m.screen.SetColored(x-1, y, '[', c)
	m.screen.SetColored(x+2, y, ']', c)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user left the title screen.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewModel(g, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Drag reporting while a button is held
	)

	_, err := p.Run()
	return err
}
