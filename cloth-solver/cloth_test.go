package cloth

import (
	"testing"
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

func testSettings() *Settings {
	return &Settings{
		Gravity:     0.2,
		BaseGravity: 0.2,
		Bounds:      r2.Vec{X: 800, Y: 900},
		DragRadius:  20,
		DragGain:    2,
	}
}

func newTestCloth(t *testing.T, columns, rows int) *Cloth {
	t.Helper()
	c, err := New(testGrid(columns, rows), testSettings(), 10*time.Millisecond)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewRejectsInvalidGrid(t *testing.T) {
	g := testGrid(3, 3)
	g.Mass = 0
	if _, err := New(g, testSettings(), time.Millisecond); err == nil {
		t.Fatalf("expected an error for zero mass")
	}
}

func TestUpdateRunsDueSubSteps(t *testing.T) {
	c := newTestCloth(t, 3, 3)

	elapsed := []time.Duration{25 * time.Millisecond, 3 * time.Millisecond, 12 * time.Millisecond}
	want := []int{2, 0, 2}
	for i, e := range elapsed {
		if got := c.Update(e); got != want[i] {
			t.Fatalf("frame %d: steps = %d, want %d", i, got, want[i])
		}
	}
	if ts := c.Stepper().Timestep(); ts != 10*time.Millisecond {
		t.Fatalf("timestep = %v, want 10ms", ts)
	}
}

func TestAnchorsStayPutUnderSimulation(t *testing.T) {
	c := newTestCloth(t, 6, 5)
	anchors := make(map[int]r2.Vec)
	for i, p := range c.Points() {
		if p.IsAnchor() {
			anchors[i] = p.Pos()
		}
	}
	if len(anchors) != 6 {
		t.Fatalf("anchors = %d, want 6", len(anchors))
	}

	for i := 0; i < 500; i++ {
		c.Step()
	}
	for i, pos := range anchors {
		if got := c.Point(i).Pos(); got != pos {
			t.Fatalf("anchor %d moved from %v to %v", i, pos, got)
		}
	}
}

func TestClothSagsUnderGravity(t *testing.T) {
	c := newTestCloth(t, 4, 4)
	bottom := c.Point(c.grid.idx(1, 3))
	y0 := bottom.Pos().Y

	for i := 0; i < 60; i++ {
		c.Step()
	}
	if bottom.Pos().Y <= y0 {
		t.Fatalf("bottom row did not sag: %v -> %v", y0, bottom.Pos().Y)
	}
	if s := c.Stats(); s.DeletedLinks != 0 {
		t.Fatalf("cloth tore under its own weight: %+v", s)
	}
}

func TestClothWithoutGravityStaysAtRest(t *testing.T) {
	c := newTestCloth(t, 4, 4)
	c.Settings().ToggleGravity()

	before := append([]PointMass(nil), c.Points()...)
	for i := 0; i < 100; i++ {
		c.Step()
	}
	for i := range before {
		if c.Points()[i].Pos() != before[i].Pos() {
			t.Fatalf("point %d drifted without gravity: %v -> %v", i, before[i].Pos(), c.Points()[i].Pos())
		}
	}
}

func TestSimulationIsDeterministic(t *testing.T) {
	a := newTestCloth(t, 8, 6)
	b := newTestCloth(t, 8, 6)
	a.Drag(r2.Vec{X: 180, Y: 100}, r2.Vec{X: 15, Y: 20})
	b.Drag(r2.Vec{X: 180, Y: 100}, r2.Vec{X: 15, Y: 20})

	for _, e := range []time.Duration{33, 7, 16, 41, 2, 17} {
		a.Update(e * time.Millisecond)
	}
	for i := 0; i < 11; i++ {
		b.Update(10 * time.Millisecond)
	}
	for i := range a.Points() {
		if a.Points()[i].Pos() != b.Points()[i].Pos() {
			t.Fatalf("point %d diverged: %v vs %v", i, a.Points()[i].Pos(), b.Points()[i].Pos())
		}
	}
}

func TestResetRestoresGrid(t *testing.T) {
	c := newTestCloth(t, 3, 3)
	c.Cut(r2.Vec{X: 155, Y: 60})
	for i := 0; i < 10; i++ {
		c.Step()
	}
	c.Reset()

	s := c.Stats()
	if s.DeletedPoints != 0 || s.DeletedLinks != 0 || s.VisibleQuads != s.Quads {
		t.Fatalf("reset left deleted entities: %+v", s)
	}
	if got := c.Point(c.Grid().idx(2, 2)).Pos(); got != (r2.Vec{X: 170, Y: 70}) {
		t.Fatalf("point not restored: %v", got)
	}
}

func TestToggleGravity(t *testing.T) {
	s := testSettings()
	s.ToggleGravity()
	if s.Gravity != 0 {
		t.Fatalf("gravity = %v, want 0", s.Gravity)
	}
	s.ToggleGravity()
	if s.Gravity != 0.2 {
		t.Fatalf("gravity = %v, want 0.2", s.Gravity)
	}
}
