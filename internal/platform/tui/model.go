package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/typeracer/internal/audio"
	"github.com/vovakirdan/typeracer/internal/core"
	"github.com/vovakirdan/typeracer/internal/games/typeracer"
)

// maxCatchUp caps the fixed steps run for one tick message. A longer stall
// drops the backlog instead of fast-forwarding the game.
const maxCatchUp = 5

// Model is the Bubble Tea model running one game.
type Model struct {
	game      *typeracer.Game
	screen    *core.Screen
	player    audio.Player
	keys      KeyMap
	help      help.Model
	config    core.RuntimeConfig
	fixedSeed bool
	input     core.InputFrame
	state     core.GameState
	lastTick  time.Time
	lag       time.Duration
	showInfo  bool
	quitting  bool
}

// NewModel creates a model and starts a fresh run of game.
// A zero seed picks a time-based one; any other seed is replayed on restart.
func NewModel(game *typeracer.Game, player audio.Player, cfg core.RuntimeConfig) Model {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if player == nil {
		player = audio.NewSilent()
	}

	game.Reset(cfg)

	h := help.New()
	h.ShowAll = true

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		player:    player,
		keys:      DefaultKeyMap(),
		help:      h,
		config:    cfg,
		fixedSeed: fixed,
		input:     core.NewInputFrame(),
		state:     game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey buffers typing keys for the next tick and acts on platform keys
// immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Paste {
		return m, nil
	}
	// One terminal read can carry several printable keys
	if keys := splitRunes(msg); len(keys) > 1 {
		return m.handleKeys(keys)
	}

	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	if m.state.GameOver {
		switch {
		case key.Matches(msg, m.keys.Restart):
			m.restart()
		case key.Matches(msg, m.keys.Leave):
			return m.quit()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Info):
		m.showInfo = !m.showInfo
	case key.Matches(msg, m.keys.VolumeUp):
		m.player.VolumeUp()
	case key.Matches(msg, m.keys.VolumeDown):
		m.player.VolumeDown()
	default:
		if ev, ok := TranslateKey(msg); ok {
			m.input.Press(ev.Key, ev.Shift)
		}
	}
	return m, nil
}

// handleKeys handles a burst of keys in arrival order. A key that quits
// ends the burst.
func (m Model) handleKeys(keys []tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, k := range keys {
		next, cmd := m.handleKey(k)
		m = next.(Model)
		if m.quitting {
			return m, cmd
		}
	}
	return m, nil
}

// handleResize follows the terminal size. The simulation works in world
// units, so the run continues untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs every whole fixed step that elapsed since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	step := tickInterval(m.config.TickRate)

	if m.lastTick.IsZero() {
		m.lag = step
	} else {
		m.lag += now.Sub(m.lastTick)
	}
	m.lastTick = now

	for n := 0; m.lag >= step && n < maxCatchUp; n++ {
		m.step()
		m.lag -= step
	}
	if m.lag >= step {
		m.lag = 0
	}

	return m, tickCmd(m.config.TickRate)
}

// step advances the game once with the buffered keys and plays its cues.
func (m *Model) step() {
	res := m.game.Step(m.input)
	m.state = res.State
	for _, ev := range res.Events {
		m.player.Play(ev)
	}
	m.input.Clear()
}

func (m *Model) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.input.Clear()
	m.showInfo = false
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.player.Close()
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showInfo && !m.state.GameOver {
		return m.infoPanel()
	}

	m.game.Render(m.screen)
	drawVolume(m.screen, m.player.Volume())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal game.
func Run(game *typeracer.Game, player audio.Player, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, player, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
