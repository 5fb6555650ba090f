package typeracer

import "github.com/vovakirdan/typeracer/internal/core"

// WordView is the render-facing copy of a word.
type WordView struct {
	Text          string
	X             float64
	Y             float64
	ColorChanging bool
}

// Snapshot contains everything a renderer needs for one frame.
// It is a value copy; mutating it never affects the game.
type Snapshot struct {
	Tick       uint64
	Cash       uint
	Lives      int
	Typed      int
	Input      string
	GameOver   bool
	Practice   bool
	Ramp       float64
	SpawnTimer float64
	WorldW     float64
	WorldH     float64
	Words      []WordView
	Affordable []core.PowerUp
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	views := make([]WordView, len(g.st.Words))
	for i, w := range g.st.Words {
		views[i] = WordView{
			Text:          w.Text,
			X:             w.X,
			Y:             w.Y,
			ColorChanging: w.ColorChanging,
		}
	}

	return Snapshot{
		Tick:       g.st.Tick,
		Cash:       g.st.Cash,
		Lives:      g.st.Lives,
		Typed:      g.st.Typed,
		Input:      g.st.Input,
		GameOver:   g.st.GameOver,
		Practice:   g.practice,
		Ramp:       g.st.Ramp,
		SpawnTimer: g.st.SpawnTimer,
		WorldW:     g.cfg.World.Width,
		WorldH:     g.cfg.World.Height,
		Words:      views,
		Affordable: g.Affordable(),
	}
}
