package cloth

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestDragMovesPointsWithinRadius(t *testing.T) {
	c := newTestCloth(t, 5, 5)
	cursor := r2.Vec{X: 170, Y: 70}

	var near []int
	for i, p := range c.Points() {
		if distance(p.Pos(), cursor) < 20 {
			near = append(near, i)
		}
	}
	before := append([]PointMass(nil), c.Points()...)

	moved := c.Drag(cursor, r2.Vec{X: 3, Y: -1})
	if moved != len(near) {
		t.Fatalf("moved = %d, want %d", moved, len(near))
	}
	for _, i := range near {
		want := r2.Add(before[i].Pos(), r2.Vec{X: 6, Y: -2})
		if got := c.Point(i).Pos(); got != want {
			t.Fatalf("point %d at %v, want %v", i, got, want)
		}
	}
	far := c.Point(c.grid.idx(0, 0))
	if far.Pos() != before[c.grid.idx(0, 0)].Pos() {
		t.Fatalf("point outside the radius moved")
	}
}

func TestCutDeletesLinkUnderCursor(t *testing.T) {
	c := newTestCloth(t, 3, 3)
	// midway on the horizontal link between (1,1) and (0,1)
	cursor := r2.Vec{X: 155, Y: 60}

	if n := c.Cut(cursor); n != 1 {
		t.Fatalf("cut = %d, want 1", n)
	}
	var cut *Link
	for i := range c.links {
		if c.links[i].IsDeleted() {
			cut = &c.links[i]
		}
	}
	a, b := c.Endpoints(cut)
	if !a.IsDeleted() || !b.IsDeleted() {
		t.Fatalf("endpoints of the cut link are still alive")
	}
	if a.Pos().Y != 60 || b.Pos().Y != 60 {
		t.Fatalf("wrong link cut: %v - %v", a.Pos(), b.Pos())
	}

	if n := c.Cut(cursor); n != 0 {
		t.Fatalf("second cut on the same spot = %d, want 0", n)
	}
}

func TestCutAwayFromLinksDoesNothing(t *testing.T) {
	c := newTestCloth(t, 3, 3)
	if n := c.Cut(r2.Vec{X: 5, Y: 5}); n != 0 {
		t.Fatalf("cut = %d, want 0", n)
	}
	if s := c.Stats(); s.DeletedPoints != 0 || s.DeletedLinks != 0 {
		t.Fatalf("stats after a miss: %+v", s)
	}
}

func TestStatsHidesQuadsWithDeletedPoints(t *testing.T) {
	c := newTestCloth(t, 3, 3)
	c.Point(c.grid.idx(1, 1)).SetDeleted(true)

	s := c.Stats()
	if s.Points != 9 || s.DeletedPoints != 1 {
		t.Fatalf("points = %d/%d deleted", s.Points, s.DeletedPoints)
	}
	// (1,1) is a corner of all four quads
	if s.Quads != 4 || s.VisibleQuads != 0 {
		t.Fatalf("quads = %d, visible = %d", s.Quads, s.VisibleQuads)
	}
}
