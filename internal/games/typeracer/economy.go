package typeracer

import (
	"fmt"

	"github.com/vovakirdan/typeracer/internal/core"
)

// Cost returns the price of a power-up under the current configuration.
func (g *Game) Cost(p core.PowerUp) uint {
	switch p {
	case core.PowerExtraLife:
		return g.cfg.Economy.ExtraLifeCost
	case core.PowerRemoveWords:
		return g.cfg.Economy.RemoveWordsCost
	case core.PowerSlowSpawn:
		return g.cfg.Economy.SlowSpawnCost
	default:
		return 0
	}
}

// Affordable lists the power-ups the player can currently pay for.
func (g *Game) Affordable() []core.PowerUp {
	var out []core.PowerUp
	for _, p := range []core.PowerUp{core.PowerExtraLife, core.PowerRemoveWords, core.PowerSlowSpawn} {
		if g.st.Cash >= g.Cost(p) {
			out = append(out, p)
		}
	}
	return out
}

// buy attempts one purchase. Insufficient cash, or nothing to remove for
// the remove-words power-up, leaves the state untouched.
func (g *Game) buy(p core.PowerUp) bool {
	cost := g.Cost(p)
	if g.st.Cash < cost {
		return false
	}

	switch p {
	case core.PowerExtraLife:
		g.spend(cost)
		g.st.Lives++
	case core.PowerRemoveWords:
		active := g.activeIndices()
		if len(active) == 0 {
			return false
		}
		g.spend(cost)
		g.removeWords(active)
	case core.PowerSlowSpawn:
		g.spend(cost)
		g.st.Ramp = g.ramp.Halve(g.st.Ramp)
	default:
		return false
	}

	g.emit(core.Event{Type: core.EventPurchase, Power: p})
	return true
}

// removeWords consumes up to RemoveWordsCount of the given word indices,
// chosen uniformly without replacement.
func (g *Game) removeWords(active []int) {
	n := g.cfg.Economy.RemoveWordsCount
	if len(active) <= n {
		for _, i := range active {
			g.st.Words[i].Consumed = true
		}
		return
	}
	for _, k := range g.rng.Sample(len(active), n) {
		g.st.Words[active[k]].Consumed = true
	}
}

// activeIndices returns the indices of words not yet consumed.
func (g *Game) activeIndices() []int {
	idx := make([]int, 0, len(g.st.Words))
	for i := range g.st.Words {
		if !g.st.Words[i].Consumed {
			idx = append(idx, i)
		}
	}
	return idx
}

func (g *Game) spend(cost uint) {
	if cost > g.st.Cash {
		panic(fmt.Sprintf("typeracer: spending %d with only %d cash", cost, g.st.Cash))
	}
	g.st.Cash -= cost
}
