package input

import (
	"testing"
	"time"

	cloth "github.com/esimov/ascii-cloth/cloth-solver"
	"gonum.org/v1/gonum/spatial/r2"
)

func newCloth(t *testing.T) *cloth.Cloth {
	t.Helper()
	c, err := cloth.New(cloth.Grid{
		Columns:         3,
		Rows:            3,
		Gap:             10,
		Offset:          r2.Vec{X: 100, Y: 100},
		Mass:            1,
		RestingDistance: 10,
		Stiffness:       1,
		TearDistance:    100,
	}, &cloth.Settings{Bounds: r2.Vec{X: 800, Y: 800}, DragRadius: 20, DragGain: 2}, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("cloth.New: %v", err)
	}
	return c
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind("drag"); err != nil || k != Drag {
		t.Fatalf("ParseKind(drag) = %v, %v", k, err)
	}
	if k, err := ParseKind("cut"); err != nil || k != Cut {
		t.Fatalf("ParseKind(cut) = %v, %v", k, err)
	}
	if _, err := ParseKind("pinch"); err == nil {
		t.Fatalf("expected an error for an unknown gesture")
	}
}

func TestGestureApply(t *testing.T) {
	c := newCloth(t)

	moved := Gesture{Kind: Drag, Pos: r2.Vec{X: 100, Y: 100}, Delta: r2.Vec{X: 1}}.Apply(c)
	if moved == 0 {
		t.Fatalf("drag moved no points")
	}

	c.Reset()
	cut := Gesture{Kind: Cut, Pos: r2.Vec{X: 105, Y: 110}}.Apply(c)
	if cut != 1 {
		t.Fatalf("cut = %d, want 1", cut)
	}
	if s := c.Stats(); s.DeletedLinks != 1 || s.DeletedPoints != 2 {
		t.Fatalf("stats after cut: %+v", s)
	}
}

func TestCutGestureFollowsPointerPath(t *testing.T) {
	c := newCloth(t)

	// from (105,100) down to (105,120) crosses the three left horizontal links
	cut := Gesture{Kind: Cut, Pos: r2.Vec{X: 105, Y: 120}, Delta: r2.Vec{Y: 20}}.Apply(c)
	if cut != 3 {
		t.Fatalf("cut = %d, want 3", cut)
	}
	if s := c.Stats(); s.DeletedLinks != 3 || s.DeletedPoints != 6 {
		t.Fatalf("stats after cut: %+v", s)
	}
}
