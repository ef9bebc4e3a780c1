package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/chromatic-collapse/internal/board"
	"github.com/vovakirdan/chromatic-collapse/internal/core"
)

const gameTitle = "CHROMATIC COLLAPSE"

// Render draws the current phase to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	if g.Phase() == PhaseTitle {
		g.renderTitle(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderPopup(dst)
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", g.grid.minW, g.grid.minH, g.screenW, g.screenH), core.ColorGray)
}

// drawRainbow writes text cycling through the tile palette.
func drawRainbow(dst *core.Screen, y int, text string) {
	x := (dst.Width() - len([]rune(text))) / 2
	i := 0
	for _, r := range text {
		if r != ' ' {
			dst.SetColored(x, y, r, core.TileColor(i%core.PaletteSize).Highlight())
			i++
		}
		x++
	}
}

func (g *Game) renderTitle(dst *core.Screen) {
	y := max(g.screenH/2-5, 0)
	drawRainbow(dst, y, gameTitle)
	dst.DrawTextCentered(y+2, "Drag across matching tiles to clear them", core.ColorWhite)
	dst.DrawTextCentered(y+3, fmt.Sprintf("Chains of %d or more score; longer chains score more", g.cfg.Rules.MinChain), core.ColorGray)
	dst.DrawTextCentered(y+4, "Rows rise from below. Keep the top row clear!", core.ColorGray)

	// Palette strip
	strip := core.PaletteSize*cellWidth - 1
	x := (dst.Width() - strip) / 2
	for i := range core.PaletteSize {
		c := core.TileColor(i)
		dst.DrawTextColored(x+i*cellWidth, y+6, "██", c.Screen())
	}

	if g.highScore > 0 {
		dst.DrawTextCentered(y+8, fmt.Sprintf("High score: %d", g.highScore), core.ColorBrightYellow)
	}
	dst.DrawTextCentered(y+10, "Press Enter to start", core.ColorBrightWhite)
	dst.DrawTextCentered(y+12, g.Controls(), core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen) {
	x := g.grid.hudX
	w := g.grid.hudW
	y := g.grid.top()
	stage := g.currentStage()

	drawRainbow(dst, y, gameTitle)

	left := fmt.Sprintf("Stage %d/%d %s", g.stageIndex+1, g.cfg.StageCount(), stage.Name)
	right := fmt.Sprintf("Score %d", g.totalScore)
	dst.DrawTextColored(x, y+1, left, core.ColorCyan)
	dst.DrawTextColored(x+w-len(right), y+1, right, core.ColorBrightWhite)

	label := fmt.Sprintf(" %d/%d", g.stageScore, stage.Target)
	barW := w - len("Target ") - len(label)
	dst.DrawTextColored(x, y+2, "Target ", core.ColorGray)
	drawBar(dst, x+len("Target "), y+2, barW, float64(g.stageScore)/float64(stage.Target), core.ColorGreen)
	dst.DrawTextColored(x+len("Target ")+barW, y+2, label, core.ColorWhite)
}

func (g *Game) renderBoard(dst *core.Screen) {
	frame := core.ColorGray
	danger := g.board.HighestFilledRow() <= 1
	if danger {
		frame = core.ColorRed
	}
	dst.DrawBox(g.grid.box, frame)
	if danger {
		msg := " DANGER "
		dst.DrawTextColored(g.grid.box.X+(g.grid.box.W-len(msg))/2, g.grid.box.Y, msg, core.ColorBrightRed)
	}

	for r := range g.board.Rows() {
		for c := range g.board.Cols() {
			cell := core.At(r, c)
			x, y := g.grid.cellPos(cell)
			v := g.board.Get(cell)
			switch {
			case v == board.Empty:
				dst.SetColored(x, y, '·', core.ColorDarkGray)
			case g.chain.Contains(cell):
				dst.DrawTextColored(x, y, "▓▓", v.Highlight())
			default:
				dst.DrawTextColored(x, y, "██", v.Screen())
			}
		}
	}
}

// renderPopup draws the floating "+points" text above the last cleared cell.
func (g *Game) renderPopup(dst *core.Screen) {
	if g.popup.points == 0 || !g.now.Before(g.popup.until) {
		return
	}
	text := fmt.Sprintf("+%d", g.popup.points)
	if g.popup.combo > 1 {
		text += fmt.Sprintf(" x%d", g.popup.combo)
	}
	x, y := g.grid.cellPos(g.popup.cell)
	x = core.Clamp(x, g.grid.box.X+1, g.grid.box.Right()-1-len(text))
	y = core.Clamp(y-1, g.grid.originY, g.grid.box.Bottom()-2)
	dst.DrawTextColored(x, y, text, g.popup.color.Highlight())
}

func (g *Game) renderFooter(dst *core.Screen) {
	x := g.grid.hudX
	w := g.grid.hudW
	y := g.grid.box.Bottom()

	progress := g.RiseProgress(g.now)
	barColor := core.ColorBlue
	if progress > 0.8 {
		barColor = core.ColorOrange
	}
	dst.DrawTextColored(x, y, "Rise   ", core.ColorGray)
	drawBar(dst, x+len("Rise   "), y, w-len("Rise   "), progress, barColor)

	best := fmt.Sprintf("Best %d", g.highScore)
	dst.DrawTextColored(x, y+1, best, core.ColorYellow)
	if g.combo > 1 {
		combo := fmt.Sprintf("Combo x%d", g.combo)
		dst.DrawTextColored(x+w-len(combo), y+1, combo, core.ColorBrightMagenta)
	}
}

// drawBar draws a horizontal progress bar of the given width.
func drawBar(dst *core.Screen, x, y, width int, frac float64, c core.Color) {
	if width <= 0 {
		return
	}
	filled := int(core.ClampF(frac, 0, 1) * float64(width))
	dst.DrawTextColored(x, y, strings.Repeat("█", filled), c)
	dst.DrawTextColored(x+filled, y, strings.Repeat("░", width-filled), core.ColorDarkGray)
}

func (g *Game) renderOverlays(dst *core.Screen) {
	switch g.Phase() {
	case PhasePaused:
		g.drawOverlay(dst, core.ColorBrightWhite, "PAUSED", "Press P to resume")
	case PhaseStageClear:
		next := "Enter: next stage"
		if g.stageIndex+1 >= g.cfg.StageCount() {
			next = "Enter: finish"
		}
		g.drawOverlay(dst, core.ColorBrightGreen,
			"STAGE CLEAR!",
			fmt.Sprintf("Stage %d complete", g.stageIndex+1),
			fmt.Sprintf("Score %d", g.totalScore),
			next)
	case PhaseGameOver:
		lines := []string{
			"GAME OVER",
			fmt.Sprintf("Fell at stage %d", g.stageIndex+1),
			fmt.Sprintf("Score %d", g.totalScore),
		}
		if g.newHigh {
			lines = append(lines, "New high score!")
		}
		lines = append(lines, "R: restart  B: title")
		g.drawOverlay(dst, core.ColorBrightRed, lines...)
	case PhaseGameClear:
		lines := []string{
			"ALL STAGES CLEAR!",
			fmt.Sprintf("Final score %d", g.totalScore),
		}
		if g.newHigh {
			lines = append(lines, "New high score!")
		}
		lines = append(lines, "R: play again  B: title")
		g.drawOverlay(dst, core.ColorBrightYellow, lines...)
	}
}

// drawOverlay draws a framed text box centered on the board.
func (g *Game) drawOverlay(dst *core.Screen, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	centerX := g.grid.box.X + g.grid.box.W/2
	centerY := g.grid.box.Y + g.grid.box.H/2
	r := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, c)
	for i, line := range lines {
		lc := core.ColorWhite
		if i == 0 {
			lc = c
		}
		dst.DrawTextColored(centerX-len([]rune(line))/2, r.Y+1+i, line, lc)
	}
}

// Controls returns the one-line control hint shown on the title screen.
func (g *Game) Controls() string {
	return fmt.Sprintf("Drag %d+ matching tiles | Arrows+Space | P pause | Q quit", g.cfg.Rules.MinChain)
}
