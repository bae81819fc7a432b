package swm

// Position places a window inside the stack area. Either Fit is set and
// the window is sized to the whole area, or any combination of edge
// offsets pins the window; axes with no offset are centered.
type Position struct {
	Top    *int
	Left   *int
	Right  *int
	Bottom *int
	Fit    bool
}

// Offset wraps an edge offset value.
func Offset(v int) *int {
	return &v
}

// At returns a fixed position with the given left and top offsets.
func At(left, top int) Position {
	return Position{Left: Offset(left), Top: Offset(top)}
}

// Fitted returns the auto-fit position: the window fills the available
// stack area.
func Fitted() Position {
	return Position{Fit: true}
}

// Config describes one window at creation time. Immutable once the
// window exists; a later drag rewrites only the manager's copy of the
// position.
type Config struct {
	position Position
	title    string
	titled   bool
	modal    bool
}

// NewConfig returns a config for an untitled, non-modal, centered window.
func NewConfig() Config {
	return Config{}
}

// WithPosition sets the window placement.
func (c Config) WithPosition(p Position) Config {
	c.position = p
	return c
}

// WithTitle gives the window a titlebar with the given text, a drag
// handle and a close button.
func (c Config) WithTitle(title string) Config {
	c.title = title
	c.titled = true
	return c
}

// WithModal makes the window block pointer input to everything behind it.
func (c Config) WithModal(modal bool) Config {
	c.modal = modal
	return c
}
