package typeracer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/typeracer/internal/config"
	"github.com/vovakirdan/typeracer/internal/core"
	"github.com/vovakirdan/typeracer/internal/words"
)

// noSpawn keeps the spawner quiet for tests that place words by hand.
const noSpawn = 1e9

func newTestGame(t *testing.T, practice bool, dict ...string) *Game {
	t.Helper()
	if len(dict) == 0 {
		dict = []string{"alpha", "beta", "gamma", "delta"}
	}
	list, err := words.NewList(dict, "test")
	if err != nil {
		t.Fatalf("NewList: %v", err)
	}

	g := New(config.DefaultTypeRacerConfig(), list)
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
		Practice: practice,
	})
	return g
}

// typed builds an input frame that types text character by character.
func typed(text string) core.InputFrame {
	in := core.NewInputFrame()
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			in.Press(core.KeyA+core.Key(r-'a'), false)
		case r >= 'A' && r <= 'Z':
			in.Press(core.KeyA+core.Key(r-'A'), true)
		case r == '-':
			in.Press(core.KeyMinus, false)
		}
	}
	return in
}

func pressed(keys ...core.Key) core.InputFrame {
	in := core.NewInputFrame()
	for _, k := range keys {
		in.Press(k, false)
	}
	return in
}

func place(g *Game, ws ...Word) {
	g.st.Words = append(g.st.Words[:0], ws...)
	g.st.SpawnTimer = noSpawn
}

func hasEvent(events []core.Event, typ core.EventType) bool {
	for _, ev := range events {
		if ev.Type == typ {
			return true
		}
	}
	return false
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and same inputs must replay the exact same run
	inputs := make([]core.InputFrame, 3000)
	dict := []string{"alpha", "beta", "gamma", "delta"}
	for i := range inputs {
		switch {
		case i%240 == 100:
			inputs[i] = typed(dict[(i/240)%len(dict)])
		case i%500 == 0:
			inputs[i] = pressed(core.KeyDigit2)
		default:
			inputs[i] = core.NewInputFrame()
		}
	}

	g1 := newTestGame(t, false, dict...)
	g2 := newTestGame(t, false, dict...)

	for tick, in := range inputs {
		r1 := g1.Step(in)
		r2 := g2.Step(in)

		if !reflect.DeepEqual(r1, r2) {
			t.Fatalf("tick %d: step results differ:\n%+v\n%+v", tick, r1, r2)
		}
		if s1, s2 := g1.Snapshot(), g2.Snapshot(); !reflect.DeepEqual(s1, s2) {
			t.Fatalf("tick %d: snapshots differ:\n%+v\n%+v", tick, s1, s2)
		}
	}

	if g1.st.Tick == 0 {
		t.Error("expected the run to advance")
	}
}

func TestGameDifferentSeedsDiverge(t *testing.T) {
	list, _ := words.NewList([]string{"alpha", "beta", "gamma", "delta"}, "test")
	run := func(seed int64) Snapshot {
		g := New(config.DefaultTypeRacerConfig(), list)
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
		for i := 0; i < 600; i++ {
			g.Step(core.NewInputFrame())
		}
		return g.Snapshot()
	}

	if reflect.DeepEqual(run(1), run(2)) {
		t.Error("different seeds produced identical runs")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, false)
	place(g, Word{Text: "alpha", X: 10, Speed: 50})
	g.st.Cash = 500
	g.st.Input = "alp"
	g.Step(core.NewInputFrame())

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})

	if g.st.Cash != 0 || g.st.Typed != 0 || g.st.Input != "" || g.st.Tick != 0 {
		t.Errorf("Reset left state behind: %+v", g.st)
	}
	if g.st.Lives != g.cfg.Lives {
		t.Errorf("Reset lives = %d, want %d", g.st.Lives, g.cfg.Lives)
	}
	if len(g.st.Words) != 0 {
		t.Errorf("Reset left %d words", len(g.st.Words))
	}
	if g.st.SpawnTimer != g.cfg.Spawn.InitialDelay {
		t.Errorf("Reset spawn timer = %v, want %v", g.st.SpawnTimer, g.cfg.Spawn.InitialDelay)
	}
	if g.st.Ramp != 0 {
		t.Errorf("Reset ramp = %v, want 0", g.st.Ramp)
	}
}

func TestMatchRemovesWordAndPays(t *testing.T) {
	tests := []struct {
		name      string
		colorful  bool
		wantCash  uint
		wantTyped int
	}{
		{"plain word", false, 10, 1},
		{"color-changing word", true, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, false)
			place(g, Word{Text: "cat", X: 100, Y: 200, Speed: 60, ColorChanging: tt.colorful})

			res := g.Step(typed("cat"))

			if g.st.Cash != tt.wantCash {
				t.Errorf("cash = %d, want %d", g.st.Cash, tt.wantCash)
			}
			if g.st.Typed != tt.wantTyped {
				t.Errorf("typed = %d, want %d", g.st.Typed, tt.wantTyped)
			}
			if g.st.Input != "" {
				t.Errorf("input = %q, want cleared", g.st.Input)
			}
			if len(g.st.Words) != 0 {
				t.Errorf("word count = %d, want 0", len(g.st.Words))
			}
			if !hasEvent(res.Events, core.EventWordTyped) {
				t.Error("expected a word typed event")
			}
		})
	}
}

func TestMatchFirstDuplicateWins(t *testing.T) {
	g := newTestGame(t, false)
	place(g,
		Word{Text: "cat", X: 10, Speed: 0},
		Word{Text: "dog", X: 20, Speed: 0},
		Word{Text: "cat", X: 30, Speed: 0},
	)

	g.Step(typed("cat"))

	if g.st.Typed != 1 {
		t.Fatalf("typed = %d, want exactly one match per tick", g.st.Typed)
	}
	if len(g.st.Words) != 2 {
		t.Fatalf("word count = %d, want 2", len(g.st.Words))
	}
	if g.st.Words[0].Text != "dog" || g.st.Words[1].X != 30 {
		t.Errorf("wrong duplicate removed, remaining: %+v", g.st.Words)
	}
}

func TestPartialInputKeepsBuffer(t *testing.T) {
	g := newTestGame(t, false)
	place(g, Word{Text: "cat", X: 10, Speed: 0})

	g.Step(typed("ca"))

	if g.st.Input != "ca" {
		t.Errorf("input = %q, want %q", g.st.Input, "ca")
	}
	if len(g.st.Words) != 1 || g.st.Typed != 0 {
		t.Errorf("prefix must not match: typed=%d words=%d", g.st.Typed, len(g.st.Words))
	}

	g.Step(typed("t"))
	if g.st.Typed != 1 {
		t.Errorf("typed = %d after completing the word, want 1", g.st.Typed)
	}
}

func TestMatchIsCaseSensitive(t *testing.T) {
	g := newTestGame(t, false)
	place(g, Word{Text: "Paris", X: 10, Speed: 0})

	g.Step(typed("paris"))
	if g.st.Typed != 0 {
		t.Fatal("lowercase input must not match a capitalized word")
	}

	g.st.Input = ""
	g.Step(typed("Paris"))
	if g.st.Typed != 1 {
		t.Errorf("typed = %d, want 1", g.st.Typed)
	}
}

func TestEmptyInputNeverMatches(t *testing.T) {
	g := newTestGame(t, false)
	place(g, Word{Text: "", X: 10, Speed: 0})

	g.Step(core.NewInputFrame())
	if g.st.Typed != 0 {
		t.Error("an empty buffer must not match anything")
	}
}

func TestBoundaryCostsLife(t *testing.T) {
	g := newTestGame(t, false)
	place(g,
		Word{Text: "alpha", X: 1199.5, Speed: 60},
		Word{Text: "beta", X: 100, Speed: 60},
	)

	res := g.Step(core.NewInputFrame())

	if g.st.Lives != 4 {
		t.Errorf("lives = %d, want 4", g.st.Lives)
	}
	if len(g.st.Words) != 1 || g.st.Words[0].Text != "beta" {
		t.Errorf("escaped word not removed: %+v", g.st.Words)
	}
	if !hasEvent(res.Events, core.EventLifeLost) {
		t.Error("expected a life lost event")
	}
}

func TestBoundaryInPracticeMode(t *testing.T) {
	g := newTestGame(t, true)
	place(g, Word{Text: "alpha", X: 1199.5, Speed: 60})

	res := g.Step(core.NewInputFrame())

	if g.st.Lives != 5 {
		t.Errorf("practice lives = %d, want 5", g.st.Lives)
	}
	if len(g.st.Words) != 0 {
		t.Error("escaped word should still be removed in practice mode")
	}
	if hasEvent(res.Events, core.EventLifeLost) {
		t.Error("practice mode must not report life loss")
	}
	if !g.Practice() || !g.Snapshot().Practice {
		t.Error("practice flag not reported")
	}
}

func TestTypedWordBeatsBoundary(t *testing.T) {
	// Matching runs before the boundary check within the same tick
	g := newTestGame(t, false)
	place(g, Word{Text: "alpha", X: 1199.5, Speed: 60})

	g.Step(typed("alpha"))

	if g.st.Lives != 5 || g.st.Typed != 1 {
		t.Errorf("lives=%d typed=%d, want 5 and 1", g.st.Lives, g.st.Typed)
	}
}

func TestGameOver(t *testing.T) {
	g := newTestGame(t, false)
	g.st.Lives = 1
	place(g, Word{Text: "alpha", X: 1199.5, Speed: 60})

	res := g.Step(core.NewInputFrame())

	if !res.State.GameOver || !g.st.GameOver {
		t.Fatal("expected game over when the last life is lost")
	}
	if !hasEvent(res.Events, core.EventGameOver) {
		t.Error("expected a game over event")
	}

	// Further steps are no-ops
	before := g.Snapshot()
	res = g.Step(typed("beta"))
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("Step changed state after game over")
	}
	if len(res.Events) != 0 {
		t.Errorf("Step emitted %d events after game over", len(res.Events))
	}
}

func TestLivesNeverNegative(t *testing.T) {
	g := newTestGame(t, false)
	g.st.Lives = 1
	place(g,
		Word{Text: "alpha", X: 1199.5, Speed: 60},
		Word{Text: "beta", X: 1199.8, Speed: 60},
		Word{Text: "gamma", X: 1199.9, Speed: 60},
	)

	g.Step(core.NewInputFrame())

	if g.st.Lives != 0 {
		t.Errorf("lives = %d, want 0", g.st.Lives)
	}
	if !g.st.GameOver {
		t.Error("expected game over")
	}
}

func TestExtraLife(t *testing.T) {
	tests := []struct {
		name      string
		cash      uint
		wantCash  uint
		wantLives int
	}{
		{"affordable", 300, 0, 6},
		{"one short", 299, 299, 5},
		{"with change", 450, 150, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, false)
			place(g)
			g.st.Cash = tt.cash

			g.Step(pressed(core.KeyDigit1))

			if g.st.Cash != tt.wantCash || g.st.Lives != tt.wantLives {
				t.Errorf("cash=%d lives=%d, want %d and %d", g.st.Cash, g.st.Lives, tt.wantCash, tt.wantLives)
			}
		})
	}
}

func TestRemoveWords(t *testing.T) {
	tests := []struct {
		name      string
		words     int
		wantWords int
		wantCash  uint
	}{
		{"three words", 3, 1, 0},
		{"one word", 1, 0, 0},
		{"no words", 0, 0, 350},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, false)
			place(g)
			for i := 0; i < tt.words; i++ {
				g.st.Words = append(g.st.Words, Word{Text: "alpha", X: float64(i * 10)})
			}
			g.st.Cash = 350

			res := g.Step(pressed(core.KeyNumpad2))

			if len(g.st.Words) != tt.wantWords {
				t.Errorf("words = %d, want %d", len(g.st.Words), tt.wantWords)
			}
			if g.st.Cash != tt.wantCash {
				t.Errorf("cash = %d, want %d", g.st.Cash, tt.wantCash)
			}
			if bought := hasEvent(res.Events, core.EventPurchase); bought != (tt.words > 0) {
				t.Errorf("purchase event = %v, want %v", bought, tt.words > 0)
			}
		})
	}
}

func TestRemoveWordsTooPoor(t *testing.T) {
	g := newTestGame(t, false)
	place(g, Word{Text: "alpha"}, Word{Text: "beta"})
	g.st.Cash = 349

	g.Step(pressed(core.KeyDigit2))

	if len(g.st.Words) != 2 || g.st.Cash != 349 {
		t.Errorf("words=%d cash=%d, want 2 and 349", len(g.st.Words), g.st.Cash)
	}
}

func TestSlowSpawn(t *testing.T) {
	g := newTestGame(t, false)
	place(g)
	g.st.Cash = 1000
	g.st.Ramp = 0.4

	g.Step(pressed(core.KeyDigit3))

	if g.st.Cash != 0 {
		t.Errorf("cash = %d, want 0", g.st.Cash)
	}
	if g.st.Ramp != 0.2 {
		t.Errorf("ramp = %v, want 0.2", g.st.Ramp)
	}

	// Not affordable any more
	g.Step(pressed(core.KeyDigit3))
	if g.st.Ramp != 0.2 {
		t.Errorf("ramp changed without cash: %v", g.st.Ramp)
	}
}

func TestPurchaseAndTypingShareTheFrame(t *testing.T) {
	g := newTestGame(t, false)
	place(g)
	g.st.Cash = 300

	in := typed("al")
	in.Press(core.KeyDigit1, false)
	in.Press(core.KeyP, false)

	g.Step(in)

	if g.st.Input != "alp" {
		t.Errorf("input = %q, want %q", g.st.Input, "alp")
	}
	if g.st.Lives != 6 || g.st.Cash != 0 {
		t.Errorf("lives=%d cash=%d, want 6 and 0", g.st.Lives, g.st.Cash)
	}
}

func TestAffordable(t *testing.T) {
	tests := []struct {
		cash uint
		want []core.PowerUp
	}{
		{0, nil},
		{299, nil},
		{300, []core.PowerUp{core.PowerExtraLife}},
		{350, []core.PowerUp{core.PowerExtraLife, core.PowerRemoveWords}},
		{1000, []core.PowerUp{core.PowerExtraLife, core.PowerRemoveWords, core.PowerSlowSpawn}},
	}

	g := newTestGame(t, false)
	for _, tt := range tests {
		g.st.Cash = tt.cash
		if got := g.Affordable(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Affordable() at %d = %v, want %v", tt.cash, got, tt.want)
		}
	}
}

func TestTypingKeys(t *testing.T) {
	tests := []struct {
		name string
		in   core.InputFrame
		want string
	}{
		{"lowercase", typed("abc"), "abc"},
		{"shift", typed("New-York"), "New-York"},
		{"backspace", func() core.InputFrame {
			in := typed("abc")
			in.Press(core.KeyBackspace, false)
			return in
		}(), "ab"},
		{"backspace on empty", pressed(core.KeyBackspace, core.KeyBackspace), ""},
		{"platform keys ignored", pressed(core.KeyGrave, core.KeyPlus, core.KeyNumpadSubtract, core.KeyEscape), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, false)
			place(g)
			g.Step(tt.in)
			if g.st.Input != tt.want {
				t.Errorf("input = %q, want %q", g.st.Input, tt.want)
			}
		})
	}
}

func TestPowerFor(t *testing.T) {
	tests := []struct {
		key  core.Key
		want core.PowerUp
	}{
		{core.KeyDigit1, core.PowerExtraLife},
		{core.KeyNumpad1, core.PowerExtraLife},
		{core.KeyDigit2, core.PowerRemoveWords},
		{core.KeyNumpad2, core.PowerRemoveWords},
		{core.KeyDigit3, core.PowerSlowSpawn},
		{core.KeyNumpad3, core.PowerSlowSpawn},
		{core.KeyA, core.PowerNone},
		{core.KeyMinus, core.PowerNone},
	}

	for _, tt := range tests {
		if got := PowerFor(tt.key); got != tt.want {
			t.Errorf("PowerFor(%v) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestFirstSpawn(t *testing.T) {
	g := newTestGame(t, false)
	cfg := g.cfg

	spawnedAt := -1
	for i := 0; i < 200; i++ {
		g.Step(core.NewInputFrame())
		if len(g.st.Words) > 0 {
			spawnedAt = i + 1
			break
		}
	}

	// 3 seconds at 60 ticks per second
	if spawnedAt < 179 || spawnedAt > 181 {
		t.Fatalf("first word spawned at tick %d, want about 180", spawnedAt)
	}

	w := g.st.Words[0]
	if w.Y < cfg.Words.TopMargin || w.Y >= cfg.World.Height-cfg.Words.BottomMargin {
		t.Errorf("spawn y = %v outside margins", w.Y)
	}
	if w.Speed < cfg.Words.MinSpeed || w.Speed >= cfg.Words.MaxSpeed {
		t.Errorf("speed = %v outside [%v, %v)", w.Speed, cfg.Words.MinSpeed, cfg.Words.MaxSpeed)
	}
	if w.X <= 0 || w.X > cfg.Words.MaxSpeed/60 {
		t.Errorf("word should have moved one tick from the left edge, x = %v", w.X)
	}
	if g.st.SpawnTimer < cfg.Spawn.BaseMin || g.st.SpawnTimer >= cfg.Spawn.BaseMax {
		t.Errorf("next delay = %v outside [%v, %v)", g.st.SpawnTimer, cfg.Spawn.BaseMin, cfg.Spawn.BaseMax)
	}
	if g.st.Ramp != cfg.Spawn.RampStep {
		t.Errorf("ramp = %v, want %v", g.st.Ramp, cfg.Spawn.RampStep)
	}
}

func TestSpawnIntervalFloor(t *testing.T) {
	g := newTestGame(t, false)
	maxRamp := g.ramp.MaxRamp()

	for i := 0; i < 20; i++ {
		g.st.Ramp = maxRamp
		g.st.SpawnTimer = 0
		g.st.Words = g.st.Words[:0]

		g.Step(core.NewInputFrame())

		if g.st.SpawnTimer < g.cfg.Spawn.IntervalFloor {
			t.Fatalf("delay %v dropped below floor %v", g.st.SpawnTimer, g.cfg.Spawn.IntervalFloor)
		}
		if g.st.Ramp > maxRamp {
			t.Fatalf("ramp %v exceeded max %v", g.st.Ramp, maxRamp)
		}
	}
}

func TestSpawnedWordsComeFromList(t *testing.T) {
	g := newTestGame(t, true, "only")
	for i := 0; i < 1200; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.st.Words) == 0 {
		t.Fatal("expected spawned words after 20 seconds")
	}
	for _, w := range g.st.Words {
		if w.Text != "only" {
			t.Errorf("spawned %q, not in the list", w.Text)
		}
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := newTestGame(t, false)
	place(g, Word{Text: "alpha", X: 300, Y: 400, Speed: 60})
	g.st.Cash = 40

	before := g.Snapshot()
	g.Resize(120, 40)

	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("Resize changed the simulation")
	}
}

func TestEndingMessage(t *testing.T) {
	tests := []struct {
		typed int
		want  string
	}{
		{0, "Bummer, I know you can do better :) Try again!"},
		{4, "Bummer, I know you can do better :) Try again!"},
		{5, "Not very bad!"},
		{19, "Not very bad!"},
		{20, "Amazing, but can you do better?"},
		{49, "Amazing, but can you do better?"},
		{50, "You're a madman, niiice :)"},
		{500, "You're a madman, niiice :)"},
	}

	for _, tt := range tests {
		if got := EndingMessage(tt.typed); got != tt.want {
			t.Errorf("EndingMessage(%d) = %q, want %q", tt.typed, got, tt.want)
		}
	}
}

func TestPowerLabel(t *testing.T) {
	eco := config.DefaultTypeRacerConfig().Economy
	tests := []struct {
		p    core.PowerUp
		want string
	}{
		{core.PowerExtraLife, "(1) Extra life (300$)"},
		{core.PowerRemoveWords, "(2) Remove 2 words (350$)"},
		{core.PowerSlowSpawn, "(3) Slow spawn (1000$)"},
		{core.PowerNone, ""},
	}

	for _, tt := range tests {
		if got := PowerLabel(tt.p, eco); got != tt.want {
			t.Errorf("PowerLabel(%v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, false)
	place(g, Word{Text: "alpha", X: 0, Y: 500, Speed: 0})
	g.st.Input = "al"
	g.st.Cash = 350

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"alpha", "(`) Info", "(1) Extra life", "(2) Remove 2 words"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if strings.Contains(out, "Slow spawn") {
		t.Error("unaffordable power-up should not be advertised")
	}

	bottom := strings.Split(scr.String(), "\n")[23]
	if !strings.HasPrefix(bottom, "Input: al") {
		t.Errorf("bottom row = %q, want the input buffer on the left", bottom)
	}
	if !strings.Contains(bottom, "Lives: 5") || !strings.Contains(bottom, "Cash: 350") {
		t.Errorf("bottom row = %q, want lives and cash", bottom)
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, false)
	g.st.Lives = 0
	g.st.GameOver = true
	g.st.Typed = 7

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"Game over!", "Words typed: 7", "Not very bad!"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}

	// Every line sits inside the box
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Game over!") || strings.Contains(line, "Words typed") {
			if strings.Count(line, "│") != 2 {
				t.Errorf("line outside the box: %q", line)
			}
		}
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(t, false)
	place(g, Word{Text: "alpha", X: 600, Y: 500})

	// Must not panic
	for _, size := range [][2]int{{0, 0}, {1, 1}, {5, 2}, {10, 3}} {
		g.Render(core.NewScreen(size[0], size[1]))
	}
}
