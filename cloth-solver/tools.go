package cloth

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Stats summarises how much of the cloth is still intact.
type Stats struct {
	Points, DeletedPoints int
	Links, DeletedLinks   int
	Quads, VisibleQuads   int
}

// Drag displaces every point closer than the drag radius to cursor by
// delta scaled with the drag gain. Anchors are dragged too.
// It returns the number of points moved.
func (c *Cloth) Drag(cursor, delta r2.Vec) int {
	var moved int

	shift := r2.Scale(c.settings.DragGain, delta)
	for i := range c.points {
		p := &c.points[i]
		if distance(p.pos, cursor) < c.settings.DragRadius {
			p.pos = r2.Add(p.pos, shift)
			moved++
		}
	}
	return moved
}

// Cut deletes every live link the cursor lies on, together with both of its
// endpoints. A cursor is on a link when the distances to both endpoints add
// up to the link length, compared in whole units.
// It returns the number of links cut.
func (c *Cloth) Cut(cursor r2.Vec) int {
	var cut int

	for i := range c.links {
		l := &c.links[i]
		if l.deleted {
			continue
		}
		a, b := c.points[l.p1].pos, c.points[l.p2].pos
		if math.Floor(distance(a, cursor)+distance(b, cursor)) == math.Floor(distance(a, b)) {
			l.Cut(c.points)
			cut++
		}
	}
	return cut
}

// Stats counts the live and deleted entities.
func (c *Cloth) Stats() Stats {
	s := Stats{
		Points: len(c.points),
		Links:  len(c.links),
		Quads:  len(c.quads),
	}
	for i := range c.points {
		if c.points[i].deleted {
			s.DeletedPoints++
		}
	}
	for i := range c.links {
		if c.links[i].deleted {
			s.DeletedLinks++
		}
	}
	for _, q := range c.quads {
		if c.QuadVisible(q) {
			s.VisibleQuads++
		}
	}
	return s
}

// QuadVisible reports whether none of the points of q is deleted.
func (c *Cloth) QuadVisible(q Quad) bool {
	for _, i := range q {
		if c.points[i].deleted {
			return false
		}
	}
	return true
}

func distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// cutStep is the spacing of the samples CutAlong takes on a pointer path.
const cutStep = 0.5

// CutAlong cuts along the straight path from one pointer position to the
// next, so fast or coarse pointer motion still hits the links it crosses.
// It returns the number of links cut.
func (c *Cloth) CutAlong(from, to r2.Vec) int {
	n := int(math.Ceil(distance(from, to) / cutStep))
	cut := c.Cut(from)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		cut += c.Cut(r2.Add(from, r2.Scale(t, r2.Sub(to, from))))
	}
	return cut
}
