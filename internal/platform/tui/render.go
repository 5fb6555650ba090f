package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/typeracer/internal/core"
	"github.com/vovakirdan/typeracer/internal/games/typeracer"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(1, 3)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))

	priceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// volumeCol is where the volume readout starts on the top HUD row,
// right of the info hint and practice marker.
const volumeCol = 22

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawVolume overlays the current volume on the top HUD row.
func drawVolume(s *core.Screen, volume float64) {
	s.DrawTextColor(volumeCol, 0, fmt.Sprintf("Volume: %.3f", volume), core.ColorGray)
}

// infoPanel renders the help and price list shown over the play field.
func (m Model) infoPanel() string {
	eco := m.game.Config().Economy

	var b strings.Builder
	b.WriteString(titleStyle.Render("Type Racer"))
	b.WriteString("\n\nType a word exactly before it crosses the screen.\n")
	b.WriteString("Buffs become visible when you have the required cash:\n\n")
	for _, p := range []core.PowerUp{core.PowerExtraLife, core.PowerRemoveWords, core.PowerSlowSpawn} {
		b.WriteString(priceStyle.Render(typeracer.PowerLabel(p, eco)))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nVolume: %.3f\n\n", m.player.Volume())
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))

	return lipgloss.Place(m.screen.Width(), m.screen.Height(),
		lipgloss.Center, lipgloss.Center, panelStyle.Render(b.String()))
}
