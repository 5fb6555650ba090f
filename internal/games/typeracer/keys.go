package typeracer

import (
	"github.com/vovakirdan/typeracer/internal/core"
)

// letterPair holds the lowercase and uppercase rune for a letter key.
type letterPair struct {
	lower, upper rune
}

// letters maps KeyA..KeyZ to their character pairs.
var letters = func() map[core.Key]letterPair {
	m := make(map[core.Key]letterPair, 26)
	for i := 0; i < 26; i++ {
		m[core.KeyA+core.Key(i)] = letterPair{lower: rune('a' + i), upper: rune('A' + i)}
	}
	return m
}()

// CharFor returns the character a key types, honoring shift.
func CharFor(ev core.KeyEvent) (rune, bool) {
	if p, ok := letters[ev.Key]; ok {
		if ev.Shift {
			return p.upper, true
		}
		return p.lower, true
	}
	if ev.Key == core.KeyMinus {
		return '-', true
	}
	return 0, false
}

// PowerFor returns the power-up bound to a key, if any.
func PowerFor(k core.Key) core.PowerUp {
	switch k {
	case core.KeyDigit1, core.KeyNumpad1:
		return core.PowerExtraLife
	case core.KeyDigit2, core.KeyNumpad2:
		return core.PowerRemoveWords
	case core.KeyDigit3, core.KeyNumpad3:
		return core.PowerSlowSpawn
	default:
		return core.PowerNone
	}
}

// applyKey feeds one buffered key press into the game. Keys that only
// matter to the platform (volume, info panel, quit) are ignored here.
func (g *Game) applyKey(ev core.KeyEvent) {
	if r, ok := CharFor(ev); ok {
		g.st.Input += string(r)
		return
	}

	if ev.Key == core.KeyBackspace {
		if in := []rune(g.st.Input); len(in) > 0 {
			g.st.Input = string(in[:len(in)-1])
		}
		return
	}

	if p := PowerFor(ev.Key); p != core.PowerNone {
		g.buy(p)
	}
}
