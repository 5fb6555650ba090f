// Package window runs the game in a desktop window through ebiten.
// ebiten calls Update at a fixed TPS, so every Update is exactly one
// simulation tick.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/typeracer/internal/audio"
	"github.com/vovakirdan/typeracer/internal/core"
	"github.com/vovakirdan/typeracer/internal/games/typeracer"
)

// Debug font metrics used by ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	glyphH = 16
	margin = 10
)

var (
	background = color.RGBA{R: 24, G: 24, B: 32, A: 255}
	panelColor = color.RGBA{R: 48, G: 116, B: 115, A: 235}
	typedColor = color.RGBA{R: 80, G: 220, B: 100, A: 255}
	cycle      = []color.RGBA{
		{R: 230, G: 70, B: 70, A: 255},
		{R: 240, G: 200, B: 60, A: 255},
		{R: 80, G: 200, B: 90, A: 255},
		{R: 80, G: 200, B: 220, A: 255},
		{R: 90, G: 120, B: 240, A: 255},
		{R: 210, G: 90, B: 220, A: 255},
	}
)

// keyTable maps ebiten keys to game keys. Plus has no key of its own, so
// the equal key it shares stands in for it.
var keyTable = func() map[ebiten.Key]core.Key {
	m := map[ebiten.Key]core.Key{
		ebiten.KeyMinus:          core.KeyMinus,
		ebiten.KeyBackspace:      core.KeyBackspace,
		ebiten.KeyDigit1:         core.KeyDigit1,
		ebiten.KeyDigit2:         core.KeyDigit2,
		ebiten.KeyDigit3:         core.KeyDigit3,
		ebiten.KeyNumpad1:        core.KeyNumpad1,
		ebiten.KeyNumpad2:        core.KeyNumpad2,
		ebiten.KeyNumpad3:        core.KeyNumpad3,
		ebiten.KeyEqual:          core.KeyPlus,
		ebiten.KeyNumpadAdd:      core.KeyNumpadAdd,
		ebiten.KeyNumpadSubtract: core.KeyNumpadSubtract,
		ebiten.KeyBackquote:      core.KeyGrave,
		ebiten.KeyEscape:         core.KeyEscape,
	}
	letters := []ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF,
		ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL,
		ebiten.KeyM, ebiten.KeyN, ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR,
		ebiten.KeyS, ebiten.KeyT, ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX,
		ebiten.KeyY, ebiten.KeyZ,
	}
	for i, k := range letters {
		m[k] = core.KeyA + core.Key(i)
	}
	return m
}()

// Window adapts the game to ebiten.Game.
type Window struct {
	game      *typeracer.Game
	player    audio.Player
	config    core.RuntimeConfig
	fixedSeed bool
	showInfo  bool
	width     int
	height    int
}

// New creates a window adapter and starts a fresh run.
func New(game *typeracer.Game, player audio.Player, cfg core.RuntimeConfig) *Window {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if player == nil {
		player = audio.NewSilent()
	}
	game.Reset(cfg)

	return &Window{
		game:      game,
		player:    player,
		config:    cfg,
		fixedSeed: fixed,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
}

// Run opens the window and blocks until it is closed.
func Run(game *typeracer.Game, player audio.Player, cfg core.RuntimeConfig) error {
	w := New(game, player, cfg)
	defer w.player.Close()

	ebiten.SetWindowSize(cfg.ScreenW, cfg.ScreenH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update runs one simulation tick.
func (w *Window) Update() error {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	var pressed []core.KeyEvent
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if ck, ok := keyTable[k]; ok {
			pressed = append(pressed, core.KeyEvent{Key: ck, Shift: shift})
		}
	}

	return w.handle(pressed)
}

// handle applies one tick worth of key presses. Platform keys act at once;
// the rest reach the game through the input frame.
func (w *Window) handle(pressed []core.KeyEvent) error {
	state := w.game.State()
	in := core.NewInputFrame()

	for _, ev := range pressed {
		switch {
		case ev.Key == core.KeyEscape:
			return ebiten.Termination
		case state.GameOver:
			if ev.Key == core.KeyR {
				w.restart()
				return nil
			}
			if ev.Key == core.KeyQ {
				return ebiten.Termination
			}
		case ev.Key == core.KeyGrave:
			w.showInfo = !w.showInfo
		case ev.Key == core.KeyPlus, ev.Key == core.KeyNumpadAdd:
			w.player.VolumeUp()
		case ev.Key == core.KeyNumpadSubtract:
			w.player.VolumeDown()
		default:
			in.Press(ev.Key, ev.Shift)
		}
	}

	res := w.game.Step(in)
	for _, ev := range res.Events {
		w.player.Play(ev)
	}
	return nil
}

func (w *Window) restart() {
	if !w.fixedSeed {
		w.config.Seed = time.Now().UnixNano()
	}
	w.game.Reset(w.config)
	w.showInfo = false
}

// Layout follows the window size; world coordinates are scaled in Draw.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		w.game.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	snap := w.game.Snapshot()

	w.drawWords(screen, snap)
	w.drawHUD(screen, snap)

	switch {
	case snap.GameOver:
		w.drawPanel(screen, []string{
			"Game over!",
			fmt.Sprintf("Words typed: %d", snap.Typed),
			typeracer.EndingMessage(snap.Typed),
			"",
			"(R) restart   (Esc) quit",
		})
	case w.showInfo:
		eco := w.game.Config().Economy
		w.drawPanel(screen, []string{
			"(+) to volume up",
			"(Numpad -) to volume down",
			"",
			"Buffs become visible when you have the required cash:",
			typeracer.PowerLabel(core.PowerExtraLife, eco),
			typeracer.PowerLabel(core.PowerRemoveWords, eco),
			typeracer.PowerLabel(core.PowerSlowSpawn, eco),
			"",
			"(Esc) to quit",
		})
	}
}

func (w *Window) drawWords(screen *ebiten.Image, snap typeracer.Snapshot) {
	fieldTop := glyphH + margin
	fieldH := w.height - 2*fieldTop

	for i, word := range snap.Words {
		x := core.Scale(word.X, snap.WorldW, w.width)
		y := fieldTop + core.Scale(word.Y, snap.WorldH, fieldH)

		ebitenutil.DebugPrintAt(screen, word.Text, x, y)

		if word.ColorChanging {
			c := cycle[(snap.Tick/8+uint64(i))%uint64(len(cycle))]
			underline(screen, x, y, len(word.Text), c)
		}
		if snap.Input != "" && strings.HasPrefix(word.Text, snap.Input) {
			underline(screen, x, y+2, len(snap.Input), typedColor)
		}
	}
}

func (w *Window) drawHUD(screen *ebiten.Image, snap typeracer.Snapshot) {
	top := fmt.Sprintf("(`) Info | Volume: %.3f", w.player.Volume())
	if snap.Practice {
		top += " | PRACTICE"
	}
	ebitenutil.DebugPrintAt(screen, top, margin, margin/2)

	right := w.width - margin
	for _, p := range snap.Affordable {
		label := typeracer.PowerLabel(p, w.game.Config().Economy)
		right -= len(label) * glyphW
		ebitenutil.DebugPrintAt(screen, label, right, margin/2)
		right -= 2 * glyphW
	}

	bottom := w.height - glyphH - margin/2
	ebitenutil.DebugPrintAt(screen, "Input: "+snap.Input, margin, bottom)

	status := fmt.Sprintf("Lives: %d  Cash: %d", snap.Lives, snap.Cash)
	ebitenutil.DebugPrintAt(screen, status, w.width-margin-len(status)*glyphW, bottom)
}

// drawPanel draws centered lines on a filled box.
func (w *Window) drawPanel(screen *ebiten.Image, lines []string) {
	longest := 0
	for _, l := range lines {
		longest = max(longest, len(l))
	}
	boxW := longest*glyphW + 4*margin
	boxH := len(lines)*glyphH + 4*margin
	x0 := (w.width - boxW) / 2
	y0 := (w.height - boxH) / 2

	fill(screen, image.Rect(x0, y0, x0+boxW, y0+boxH), panelColor)
	for i, l := range lines {
		x := x0 + (boxW-len(l)*glyphW)/2
		ebitenutil.DebugPrintAt(screen, l, x, y0+2*margin+i*glyphH)
	}
}

func underline(screen *ebiten.Image, x, y, chars int, c color.Color) {
	fill(screen, image.Rect(x, y+glyphH-2, x+chars*glyphW, y+glyphH), c)
}

func fill(screen *ebiten.Image, r image.Rectangle, c color.Color) {
	r = r.Intersect(screen.Bounds())
	if r.Empty() {
		return
	}
	screen.SubImage(r).(*ebiten.Image).Fill(c)
}
