package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimulation(t *testing.T) (tcell.SimulationScreen, *tcellScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	scr := newTcellScreen(sim)
	if err := scr.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	sim.SetSize(20, 5)
	return sim, scr
}

func TestTcellDrawCopiesCanvas(t *testing.T) {
	sim, scr := newSimulation(t)
	defer scr.Close()

	cv := NewCanvas(20, 5)
	cv.Text(1, 2, "hi", Yellow, Black)
	if err := scr.Draw(cv); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	ch, _, style, _ := sim.GetContent(1, 2)
	if ch != 'h' {
		t.Fatalf("cell (1,2) = %q, want h", ch)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 255, 0) {
		t.Fatalf("foreground = %v, want yellow", fg)
	}
}

// nextOf polls until an event of the wanted type shows up.
func nextOf(scr *tcellScreen, typ EventType) Event {
	for i := 0; i < 10; i++ {
		if ev := scr.PollEvent(); ev.Type == typ {
			return ev
		}
	}
	return Event{}
}

func TestTcellTranslatesKeys(t *testing.T) {
	sim, scr := newSimulation(t)
	defer scr.Close()

	sim.InjectKey(tcell.KeyRune, 'g', tcell.ModNone)
	if ev := nextOf(scr, EventKey); ev.Key != KeyRune || ev.Ch != 'g' {
		t.Fatalf("event = %+v, want rune g", ev)
	}

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	if ev := nextOf(scr, EventKey); ev.Key != KeyEsc {
		t.Fatalf("event = %+v, want Esc", ev)
	}
}

func TestTcellTranslatesMouse(t *testing.T) {
	sim, scr := newSimulation(t)
	defer scr.Close()

	sim.InjectMouse(4, 3, tcell.Button2, tcell.ModNone)
	ev := nextOf(scr, EventMouse)
	if ev.Button != ButtonRight || ev.X != 4 || ev.Y != 3 {
		t.Fatalf("event = %+v, want right button at (4,3)", ev)
	}
}
