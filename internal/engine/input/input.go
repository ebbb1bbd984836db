// Package input turns window events into per-frame input snapshots.
package input

// Key is a key the viewer reacts to.
type Key int

const (
	KeyW Key = iota
	KeyS
	KeyA
	KeyD
	KeyQ
	KeyE
	KeyP
	KeyO
	KeyEscape
	KeyF12
	keyCount
)

var keyNames = [keyCount]string{"W", "S", "A", "D", "Q", "E", "P", "O", "Escape", "F12"}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// State is the input for one frame.
type State struct {
	held    [keyCount]bool
	pressed [keyCount]bool

	// CursorX, CursorY is the virtual cursor position in pixels. With the
	// cursor captured it keeps accumulating past the window edges.
	CursorX, CursorY float64
	// CursorMoved reports whether the cursor moved during the frame.
	CursorMoved bool
	// ScrollY is the accumulated vertical wheel offset for the frame.
	ScrollY float64
	// Quit is set when the window was asked to close.
	Quit bool
}

// Down reports whether k is held.
func (s State) Down(k Key) bool {
	return k >= 0 && k < keyCount && s.held[k]
}

// Pressed reports whether k went down during the frame.
func (s State) Pressed(k Key) bool {
	return k >= 0 && k < keyCount && s.pressed[k]
}

// Tracker accumulates events between frames.
type Tracker struct {
	state State
}

// NewTracker creates a tracker with the cursor at (x, y).
func NewTracker(x, y float64) *Tracker {
	return &Tracker{state: State{CursorX: x, CursorY: y}}
}

// KeyDown records a key press. Auto-repeat presses keep the key held
// without counting as a new press.
func (t *Tracker) KeyDown(k Key, repeat bool) {
	if k < 0 || k >= keyCount {
		return
	}
	if !repeat && !t.state.held[k] {
		t.state.pressed[k] = true
	}
	t.state.held[k] = true
}

// KeyUp records a key release.
func (t *Tracker) KeyUp(k Key) {
	if k < 0 || k >= keyCount {
		return
	}
	t.state.held[k] = false
}

// MouseMotion moves the virtual cursor by a relative offset.
func (t *Tracker) MouseMotion(dx, dy float64) {
	t.state.CursorX += dx
	t.state.CursorY += dy
	t.state.CursorMoved = true
}

// Scroll adds a wheel offset; positive is away from the user.
func (t *Tracker) Scroll(dy float64) {
	t.state.ScrollY += dy
}

// RequestQuit marks the window for closing.
func (t *Tracker) RequestQuit() {
	t.state.Quit = true
}

// ReleaseAll drops every held key, for example when focus is lost.
func (t *Tracker) ReleaseAll() {
	t.state.held = [keyCount]bool{}
}

// Snapshot returns the state for the frame and clears the per-frame parts.
// Held keys, the cursor position and quit persist.
func (t *Tracker) Snapshot() State {
	s := t.state
	t.state.pressed = [keyCount]bool{}
	t.state.CursorMoved = false
	t.state.ScrollY = 0
	return s
}
