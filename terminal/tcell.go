package terminal

import "github.com/gdamore/tcell/v2"

type tcellScreen struct {
	screen tcell.Screen
}

// NewTcell returns a Screen backed by tcell.
func NewTcell() (Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newTcellScreen(s), nil
}

func newTcellScreen(s tcell.Screen) *tcellScreen {
	return &tcellScreen{screen: s}
}

func (t *tcellScreen) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	t.screen.Clear()

	return nil
}

func (t *tcellScreen) Close() {
	t.screen.Fini()
}

func (t *tcellScreen) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellScreen) Draw(c *Canvas) error {
	t.screen.Clear()
	w, h := c.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := c.At(x, y)
			if cell.Ch == 0 {
				continue
			}
			style := tcell.StyleDefault.Foreground(tcellColor(cell.Fg)).Background(tcellColor(cell.Bg))
			t.screen.SetContent(x, y, cell.Ch, nil, style)
		}
	}
	t.screen.Show()
	return nil
}

func (t *tcellScreen) PollEvent() Event {
	switch ev := t.screen.PollEvent().(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			return Event{Type: EventKey, Key: KeyEsc}
		case tcell.KeyCtrlC:
			return Event{Type: EventKey, Key: KeyCtrlC}
		case tcell.KeyRune:
			return Event{Type: EventKey, Key: KeyRune, Ch: ev.Rune()}
		}
		return Event{Type: EventKey}
	case *tcell.EventMouse:
		x, y := ev.Position()
		b := ButtonNone
		switch {
		case ev.Buttons()&tcell.Button1 != 0:
			b = ButtonLeft
		case ev.Buttons()&tcell.Button2 != 0:
			b = ButtonRight
		}
		return Event{Type: EventMouse, Button: b, X: x, Y: y}
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, X: w, Y: h}
	case *tcell.EventError:
		return Event{Type: EventError, Err: ev}
	case *tcell.EventInterrupt, nil:
		// PollEvent returns nil once the screen is finalised.
		return Event{Type: EventInterrupt}
	}
	return Event{}
}

func tcellColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
