package terminal

import (
	"context"
	"log"
	"time"

	cloth "github.com/esimov/ascii-cloth/cloth-solver"
	"github.com/esimov/ascii-cloth/input"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

// Terminal runs the frame loop: it feeds local and remote input to the
// cloth, advances the simulation and draws it on a Screen. Everything that
// mutates the cloth happens on the goroutine calling Run.
type Terminal struct {
	screen  Screen
	cloth   *cloth.Cloth
	toggles *input.Toggles
	remote  <-chan input.Gesture
	fps     int

	canvas *Canvas
	vp     Viewport
	camera Camera
	view   View

	mouse    r2.Vec
	hasMouse bool
	// button is the one held on the last mouse event.
	button Button

	frames     int
	fpsStart   time.Time
	currentFPS int

	// OnTear is called with the number of links torn during a frame.
	OnTear func(links int)
	// now returns the current time; tests swap it for a fixed clock.
	now func() time.Time
}

// New creates a terminal front end for c, capped at fps frames per second.
func New(screen Screen, c *cloth.Cloth, toggles *input.Toggles, fps int) *Terminal {
	return &Terminal{
		screen:  screen,
		cloth:   c,
		toggles: toggles,
		fps:     fps,
		canvas:  NewCanvas(0, 0),
		vp:      Viewport{World: c.Settings().Bounds},
		view:    DefaultView(),
		now:     time.Now,
	}
}

// SetRemote registers a channel of gestures coming from outside the terminal.
func (t *Terminal) SetRemote(gestures <-chan input.Gesture) {
	t.remote = gestures
}

// View returns the current presentation switches.
func (t *Terminal) View() View {
	return t.view
}

// Run initialises the screen and runs the frame loop until ctx is cancelled
// or the user quits.
func (t *Terminal) Run(ctx context.Context) error {
	if err := t.screen.Init(); err != nil {
		return errors.Wrap(err, "initialising terminal")
	}
	defer t.screen.Close()
	t.reallocBackBuffer(t.screen.Size())

	done := make(chan struct{})
	events := make(chan Event, 64)
	go func() {
		for {
			ev := t.screen.PollEvent()
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	ticker := time.NewTicker(time.Second / time.Duration(t.fps))
	defer ticker.Stop()

	last := t.now()
	t.fpsStart = last
mainloop:
	for {
		select {
		case <-ctx.Done():
			break mainloop
		case ev := <-events:
			quit, err := t.handleEvent(ev)
			if err != nil {
				return err
			}
			if quit {
				break mainloop
			}
		case g, ok := <-t.remote:
			if !ok {
				t.remote = nil
				continue
			}
			t.applyGesture(g)
		case <-ticker.C:
			now := t.now()
			t.frame(now.Sub(last))
			last = now
			if err := t.screen.Draw(t.canvas); err != nil {
				return errors.Wrap(err, "drawing frame")
			}
		}
	}
	return nil
}

// frame advances the simulation by elapsed and redraws the back buffer.
func (t *Terminal) frame(elapsed time.Duration) int {
	torn := t.cloth.Stats().DeletedLinks
	steps := t.cloth.Update(elapsed)
	if n := t.cloth.Stats().DeletedLinks - torn; n > 0 {
		log.Printf("%d links torn", n)
		if t.OnTear != nil {
			t.OnTear(n)
		}
	}
	t.camera.Settle()
	t.countFrame()
	t.redraw()

	return steps
}

func (t *Terminal) redraw() {
	var cursor *r2.Vec
	if t.hasMouse {
		cursor = &t.mouse
	}
	Render(t.canvas, Scene{
		Cloth:    t.cloth,
		View:     t.view,
		Viewport: t.vp,
		Camera:   t.camera.Offset,
		Cursor:   cursor,
		FPS:      t.currentFPS,
	})
}

func (t *Terminal) countFrame() {
	t.frames++
	now := t.now()
	if d := now.Sub(t.fpsStart); d >= time.Second {
		t.currentFPS = int(float64(t.frames) / d.Seconds())
		t.frames = 0
		t.fpsStart = now
	}
}

func (t *Terminal) reallocBackBuffer(w, h int) {
	t.canvas.Resize(w, h)
	t.vp.Cols, t.vp.Rows = w, h
}

// handleEvent reacts to a terminal event and reports whether the user quit.
func (t *Terminal) handleEvent(ev Event) (bool, error) {
	switch ev.Type {
	case EventKey:
		switch ev.Key {
		case KeyEsc, KeyCtrlC:
			return true, nil
		case KeyRune:
			if ev.Ch == 'q' || ev.Ch == 'Q' {
				return true, nil
			}
			for _, a := range t.toggles.Press(ev.Ch, t.now()) {
				t.apply(a)
			}
		}
	case EventMouse:
		pos := t.vp.ToWorld(ev.X, ev.Y)
		// A gesture starts where its button went down, not where the
		// pointer was last seen.
		prev := pos
		if t.hasMouse && ev.Button == t.button {
			prev = t.mouse
		}
		t.mouse, t.hasMouse, t.button = pos, true, ev.Button

		switch ev.Button {
		case ButtonLeft:
			t.cloth.CutAlong(prev, pos)
		case ButtonRight:
			t.applyGesture(input.Gesture{Kind: input.Drag, Pos: pos, Delta: r2.Sub(pos, prev)})
		}
	case EventResize:
		t.reallocBackBuffer(ev.X, ev.Y)
	case EventError:
		return true, errors.Wrap(ev.Err, "terminal event")
	}
	return false, nil
}

func (t *Terminal) applyGesture(g input.Gesture) {
	g.Apply(t.cloth)
	if g.Kind == input.Drag {
		t.camera.Shake(g.Delta)
	}
}

// apply runs the effect of a keyboard shortcut.
func (t *Terminal) apply(a input.Action) {
	switch a {
	case input.ActionReset:
		t.cloth.Reset()
	case input.ActionGravity:
		t.cloth.Settings().ToggleGravity()
	case input.ActionUI:
		t.view.ShowUI = !t.view.ShowUI
	case input.ActionWireframe:
		t.view.ShowWireframe = !t.view.ShowWireframe
	case input.ActionCloth:
		t.view.ShowCloth = !t.view.ShowCloth
	}
	log.Printf("shortcut: %v", a)
}
