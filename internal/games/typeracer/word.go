package typeracer

// Word is one word sliding across the play field.
type Word struct {
	Text          string  // Exact text the player must type
	X             float64 // Horizontal position in world units, grows every tick
	Y             float64 // Vertical position in world units, fixed at spawn
	Speed         float64 // World units per second
	ColorChanging bool    // Cycles colors on screen and pays a bigger reward
	Consumed      bool    // Removed at the end of the current tick
}

// Move advances the word by one step of dt seconds.
func (w *Word) Move(dt float64) {
	w.X += w.Speed * dt
}

// Escaped reports whether the word has reached the right edge.
func (w *Word) Escaped(worldW float64) bool {
	return w.X >= worldW
}

// moveWords advances every word. Words do not interact, so order is irrelevant.
func moveWords(words []Word, dt float64) {
	for i := range words {
		words[i].Move(dt)
	}
}

// pruneConsumed drops consumed words in place, preserving order.
func pruneConsumed(words []Word) []Word {
	kept := words[:0]
	for _, w := range words {
		if !w.Consumed {
			kept = append(kept, w)
		}
	}
	// Release text of the dropped tail for the GC.
	for i := len(kept); i < len(words); i++ {
		words[i] = Word{}
	}
	return kept
}
