package core

// Key identifies a physical key the game understands.
// Platforms translate their own key events into Keys so the simulation
// never depends on a particular terminal or windowing library.
type Key int

const (
	KeyNone Key = iota

	// Letters A..Z are contiguous so KeyA+n addresses the n-th letter.
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyMinus     // Appends a literal hyphen
	KeyBackspace // Removes the last typed character

	KeyDigit1 // Buy extra life
	KeyDigit2 // Remove words
	KeyDigit3 // Slow spawn
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3

	KeyPlus           // Volume up
	KeyNumpadAdd      // Volume up
	KeyNumpadSubtract // Volume down
	KeyGrave          // Toggle info panel
	KeyEscape         // Quit
)

// IsLetter reports whether k is one of KeyA..KeyZ.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// String returns a short human-readable name for the key.
func (k Key) String() string {
	if k.IsLetter() {
		return string(rune('A' + int(k-KeyA)))
	}
	switch k {
	case KeyNone:
		return "None"
	case KeyMinus:
		return "-"
	case KeyBackspace:
		return "Backspace"
	case KeyDigit1:
		return "1"
	case KeyDigit2:
		return "2"
	case KeyDigit3:
		return "3"
	case KeyNumpad1:
		return "Num1"
	case KeyNumpad2:
		return "Num2"
	case KeyNumpad3:
		return "Num3"
	case KeyPlus:
		return "+"
	case KeyNumpadAdd:
		return "Num+"
	case KeyNumpadSubtract:
		return "Num-"
	case KeyGrave:
		return "`"
	case KeyEscape:
		return "Esc"
	default:
		return "Unknown"
	}
}

// KeyEvent is a single key press together with the shift state at the
// moment it was pressed.
type KeyEvent struct {
	Key   Key
	Shift bool
}

// InputFrame holds every key press buffered between two simulation ticks.
// Order is preserved: the game applies events in the order they arrived.
type InputFrame struct {
	Keys []KeyEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Keys: make([]KeyEvent, 0, 8)}
}

// Press appends a key press to the frame.
func (f *InputFrame) Press(k Key, shift bool) {
	f.Keys = append(f.Keys, KeyEvent{Key: k, Shift: shift})
}

// Len returns the number of buffered key presses.
func (f InputFrame) Len() int {
	return len(f.Keys)
}

// Clear drops all buffered presses, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Keys = f.Keys[:0]
}
