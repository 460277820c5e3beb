package terminal

import "github.com/nsf/termbox-go"

type termboxScreen struct{}

// NewTermbox returns a Screen backed by termbox.
func NewTermbox() Screen {
	return termboxScreen{}
}

func (termboxScreen) Init() error {
	if err := termbox.Init(); err != nil {
		return err
	}
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
	termbox.SetOutputMode(termbox.OutputRGB)

	return nil
}

func (termboxScreen) Close() {
	termbox.Close()
}

func (termboxScreen) Size() (int, int) {
	return termbox.Size()
}

func (termboxScreen) Draw(c *Canvas) error {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	w, h := c.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := c.At(x, y)
			if cell.Ch == 0 {
				continue
			}
			termbox.SetCell(x, y, cell.Ch, termboxColor(cell.Fg), termboxColor(cell.Bg))
		}
	}
	return termbox.Flush()
}

func (termboxScreen) PollEvent() Event {
	return termboxEvent(termbox.PollEvent())
}

func termboxColor(c RGB) termbox.Attribute {
	return termbox.RGBToAttribute(c.R, c.G, c.B)
}

func termboxEvent(ev termbox.Event) Event {
	switch ev.Type {
	case termbox.EventKey:
		switch {
		case ev.Key == termbox.KeyEsc:
			return Event{Type: EventKey, Key: KeyEsc}
		case ev.Key == termbox.KeyCtrlC:
			return Event{Type: EventKey, Key: KeyCtrlC}
		case ev.Ch != 0:
			return Event{Type: EventKey, Key: KeyRune, Ch: ev.Ch}
		case ev.Key == termbox.KeySpace:
			return Event{Type: EventKey, Key: KeyRune, Ch: ' '}
		}
		return Event{Type: EventKey}
	case termbox.EventMouse:
		b := ButtonNone
		switch ev.Key {
		case termbox.MouseLeft:
			b = ButtonLeft
		case termbox.MouseRight:
			b = ButtonRight
		}
		return Event{Type: EventMouse, Button: b, X: ev.MouseX, Y: ev.MouseY}
	case termbox.EventResize:
		return Event{Type: EventResize, X: ev.Width, Y: ev.Height}
	case termbox.EventInterrupt:
		return Event{Type: EventInterrupt}
	case termbox.EventError:
		return Event{Type: EventError, Err: ev.Err}
	}
	return Event{}
}
