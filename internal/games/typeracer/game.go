// Package typeracer implements the typing arcade game.
// Words spawn on the left edge at random heights and slide right; the player
// types a word's exact text to remove it before it escapes and costs a life.
// Typed words earn cash that buys an extra life, removal of words, or a
// slower spawn rate.
package typeracer

import (
	"fmt"

	"github.com/vovakirdan/typeracer/internal/config"
	"github.com/vovakirdan/typeracer/internal/core"
	"github.com/vovakirdan/typeracer/internal/rng"
	"github.com/vovakirdan/typeracer/internal/words"
)

// State is the complete mutable state of one run. It is owned by Game and
// only changes inside Step.
type State struct {
	Cash       uint    // Spendable currency, never negative
	Lives      int     // Remaining lives; game over when it reaches 0
	Typed      int     // Words typed correctly
	Input      string  // Current typing buffer
	Words      []Word  // Active words in spawn order
	SpawnTimer float64 // Seconds until the next spawn
	Ramp       float64 // Difficulty ramp narrowing the spawn interval
	GameOver   bool    // Terminal flag
	Tick       uint64  // Simulation ticks since reset
}

// Game implements the typing game logic.
type Game struct {
	cfg      config.TypeRacerConfig
	words    *words.List
	ramp     *config.SpawnRamp
	rng      rng.Source
	runtime  core.RuntimeConfig
	practice bool
	st       State
	events   []core.Event
}

// New creates a game that draws words from list. Call Reset before Step.
func New(cfg config.TypeRacerConfig, list *words.List) *Game {
	return &Game{
		cfg:   cfg,
		words: list,
		ramp:  config.NewSpawnRamp(cfg.Spawn),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "typeracer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Type Racer"
}

// Reset initializes or restarts the game with fresh state.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.practice = rc.Practice
	g.rng = rng.New(rc.Seed)
	g.events = g.events[:0]
	g.st = State{
		Lives:      g.cfg.Lives,
		Words:      make([]Word, 0, 16),
		SpawnTimer: g.ramp.InitialDelay(),
	}
}

// Resize updates the screen dimensions without touching the simulation.
// The play field lives in world units, so a resize never restarts the run.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
}

// Step advances the game by one fixed tick.
// Buffered key presses are applied first, then the tick runs in a fixed
// order: spawn, move, match input, check boundary, prune. Once the game is
// over Step does nothing.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.st.GameOver {
		return core.StepResult{State: g.State()}
	}

	g.events = g.events[:0]
	dt := g.runtime.TickSeconds()
	g.st.Tick++

	for _, ev := range in.Keys {
		g.applyKey(ev)
	}

	g.spawn(dt)
	moveWords(g.st.Words, dt)
	g.matchInput()
	g.checkBoundary()
	g.st.Words = pruneConsumed(g.st.Words)

	if g.st.Lives == 0 {
		g.st.GameOver = true
		g.emit(core.Event{Type: core.EventGameOver})
	}

	g.assertInvariants()

	return core.StepResult{State: g.State(), Events: g.takeEvents()}
}

// State returns the current game state summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Cash:     g.st.Cash,
		Lives:    g.st.Lives,
		Typed:    g.st.Typed,
		GameOver: g.st.GameOver,
	}
}

// Practice reports whether life loss is suppressed.
func (g *Game) Practice() bool {
	return g.practice
}

// Config returns the game configuration.
func (g *Game) Config() config.TypeRacerConfig {
	return g.cfg
}

func (g *Game) emit(ev core.Event) {
	g.events = append(g.events, ev)
}

// takeEvents hands the tick's events to the caller in a fresh slice so
// the next tick cannot overwrite them.
func (g *Game) takeEvents() []core.Event {
	if len(g.events) == 0 {
		return nil
	}
	out := make([]core.Event, len(g.events))
	copy(out, g.events)
	return out
}

// assertInvariants panics on states the purchase and life gating rule out.
func (g *Game) assertInvariants() {
	if g.st.Lives < 0 {
		panic(fmt.Sprintf("typeracer: lives went negative (%d)", g.st.Lives))
	}
	if g.st.GameOver != (g.st.Lives == 0) {
		panic(fmt.Sprintf("typeracer: game over flag %v with %d lives", g.st.GameOver, g.st.Lives))
	}
	for _, w := range g.st.Words {
		if w.Consumed {
			panic("typeracer: consumed word survived pruning")
		}
	}
}
