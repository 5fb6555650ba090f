package typeracer

import "github.com/vovakirdan/typeracer/internal/core"

// matchInput types the first unconsumed word whose text equals the input
// buffer. Matching is by value, so among duplicates the earliest word in
// spawn order wins; clearing the buffer guarantees one match per tick.
func (g *Game) matchInput() {
	if g.st.Input == "" {
		return
	}

	for i := range g.st.Words {
		w := &g.st.Words[i]
		if w.Consumed || w.Text != g.st.Input {
			continue
		}

		w.Consumed = true
		g.st.Typed++
		if w.ColorChanging {
			g.st.Cash += g.cfg.Words.ColorReward
		} else {
			g.st.Cash += g.cfg.Words.Reward
		}
		g.st.Input = ""
		g.emit(core.Event{Type: core.EventWordTyped, Word: w.Text})
		return
	}
}
