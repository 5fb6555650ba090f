package typeracer

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/typeracer/internal/core"
)

// Visual settings for the terminal renderer.
const (
	hudRows        = 2 // One HUD row at the top and one at the bottom
	colorCycleRate = 8 // Ticks per color step for color-changing words
	labelGap       = 2
)

// Render draws the current game state to the screen.
// World coordinates are scaled onto the rows between the two HUD lines.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() <= hudRows {
		return
	}

	g.renderWords(dst)
	g.renderHUD(dst)

	if g.st.GameOver {
		g.renderGameOver(dst)
	}
}

func (g *Game) renderWords(dst *core.Screen) {
	fieldH := dst.Height() - hudRows
	step := g.st.Tick / colorCycleRate

	for i, w := range g.st.Words {
		x := core.Scale(w.X, g.cfg.World.Width, dst.Width())
		y := 1 + core.Scale(w.Y, g.cfg.World.Height, fieldH)

		color := core.ColorWhite
		if w.ColorChanging {
			color = core.CycleColor(step + uint64(i))
		}
		dst.DrawTextColor(x, y, w.Text, color)

		// Highlight the part already typed
		if g.st.Input != "" && strings.HasPrefix(w.Text, g.st.Input) {
			dst.DrawTextColor(x, y, g.st.Input, core.ColorGreen)
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	bottom := h - 1

	// Top-left: info hint and practice flag
	hint := "(`) Info"
	if g.practice {
		hint += "  PRACTICE"
	}
	dst.DrawTextColor(1, 0, hint, core.ColorGray)

	// Top-right: affordable power-ups, cheapest furthest right
	right := w - 1
	for _, p := range g.Affordable() {
		label := PowerLabel(p, g.cfg.Economy)
		dst.DrawTextRight(right, 0, label, core.ColorYellow)
		right -= len(label) + labelGap
	}

	// Bottom-left: typing buffer
	dst.DrawTextColor(0, bottom, "Input: ", core.ColorGray)
	dst.DrawTextColor(len("Input: "), bottom, g.st.Input, core.ColorWhite)

	// Bottom-right: lives and cash
	cash := fmt.Sprintf("Cash: %d", g.st.Cash)
	lives := fmt.Sprintf("Lives: %d", g.st.Lives)
	dst.DrawTextRight(w-1, bottom, cash, core.ColorGreen)
	livesColor := core.ColorWhite
	if g.st.Lives <= 1 {
		livesColor = core.ColorRed
	}
	dst.DrawTextRight(w-1-len(cash)-labelGap, bottom, lives, livesColor)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	lines := []string{
		"Game over!",
		fmt.Sprintf("Words typed: %d", g.st.Typed),
		EndingMessage(g.st.Typed),
		"",
		"R restart  |  Q quit",
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 2
	box := core.CenteredRect(dst.Width(), dst.Height(), boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorRed)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, core.ColorWhite)
	}
}
