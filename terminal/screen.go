package terminal

// EventType identifies the kind of a terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventInterrupt
	EventError
)

// Key identifies special keys. Printable keys are reported as KeyRune.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEsc
	KeyCtrlC
)

// Button is the mouse button held during a mouse event.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
)

// Event is a backend independent terminal event. Mouse events carry the
// cursor cell in X and Y, resize events the new size.
type Event struct {
	Type   EventType
	Key    Key
	Ch     rune
	Button Button
	X, Y   int
	Err    error
}

// Screen is the terminal backend the cloth is drawn on.
type Screen interface {
	Init() error
	Close()
	Size() (int, int)
	// Draw copies the canvas to the terminal and flushes it.
	Draw(c *Canvas) error
	// PollEvent blocks until the next event.
	PollEvent() Event
}

// NewScreen returns the backend registered under name.
func NewScreen(name string) (Screen, error) {
	switch name {
	case "tcell":
		return NewTcell()
	default:
		return NewTermbox(), nil
	}
}
