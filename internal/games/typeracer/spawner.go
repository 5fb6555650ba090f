package typeracer

// spawn counts down the spawn timer and creates one word when it expires.
// Random draws happen in a fixed order (height, text, speed, color flag,
// next delay) so seeded runs replay exactly.
func (g *Game) spawn(dt float64) {
	g.st.SpawnTimer -= dt
	if g.st.SpawnTimer > 0 {
		return
	}

	wc := g.cfg.Words
	y := g.rng.Float64Range(wc.TopMargin, g.cfg.World.Height-wc.BottomMargin)
	text := g.words.Pick(g.rng)
	speed := g.rng.Float64Range(wc.MinSpeed, wc.MaxSpeed)
	colorChanging := g.rng.Float64Range(0, 1) < wc.ColorChance

	g.st.Words = append(g.st.Words, Word{
		Text:          text,
		X:             0,
		Y:             y,
		Speed:         speed,
		ColorChanging: colorChanging,
	})

	lo, hi := g.ramp.Interval(g.st.Ramp)
	g.st.SpawnTimer = g.rng.Float64Range(lo, hi)
	g.st.Ramp = g.ramp.Advance(g.st.Ramp)
}
