package typeracer

import "github.com/vovakirdan/typeracer/internal/core"

// checkBoundary consumes every word that reached the right edge and charges
// a life for each, unless practice mode is on. Lives floor at zero; the
// game-over transition itself happens once at the end of the tick.
func (g *Game) checkBoundary() {
	for i := range g.st.Words {
		w := &g.st.Words[i]
		if w.Consumed || !w.Escaped(g.cfg.World.Width) {
			continue
		}

		w.Consumed = true
		if g.practice || g.st.Lives == 0 {
			continue
		}
		g.st.Lives--
		g.emit(core.Event{Type: core.EventLifeLost, Word: w.Text})
	}
}
