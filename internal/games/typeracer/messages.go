package typeracer

import (
	"fmt"

	"github.com/vovakirdan/typeracer/internal/config"
	"github.com/vovakirdan/typeracer/internal/core"
)

// EndingMessage picks the game-over line for the number of typed words.
func EndingMessage(typed int) string {
	switch {
	case typed < 5:
		return "Bummer, I know you can do better :) Try again!"
	case typed < 20:
		return "Not very bad!"
	case typed < 50:
		return "Amazing, but can you do better?"
	default:
		return "You're a madman, niiice :)"
	}
}

// PowerLabel is the HUD label advertising a power-up and its price.
func PowerLabel(p core.PowerUp, eco config.EconomyConfig) string {
	switch p {
	case core.PowerExtraLife:
		return fmt.Sprintf("(1) Extra life (%d$)", eco.ExtraLifeCost)
	case core.PowerRemoveWords:
		return fmt.Sprintf("(2) Remove %d words (%d$)", eco.RemoveWordsCount, eco.RemoveWordsCost)
	case core.PowerSlowSpawn:
		return fmt.Sprintf("(3) Slow spawn (%d$)", eco.SlowSpawnCost)
	default:
		return ""
	}
}
