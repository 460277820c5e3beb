package cloth

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

// Quad groups the arena indices of one grid cell in the order
// {self, left, above, diagonal}. It is only used for shading.
type Quad [4]int

// Grid describes the rectangular layout the cloth is generated from.
type Grid struct {
	Columns int
	Rows    int
	Gap     float64
	Offset  r2.Vec

	Mass            float64
	RestingDistance float64
	Stiffness       float64
	TearDistance    float64
}

// Validate rejects layouts that can't be simulated.
func (g Grid) Validate() error {
	switch {
	case g.Columns < 1 || g.Rows < 1:
		return errors.Errorf("grid needs at least one column and one row, got %dx%d", g.Columns, g.Rows)
	case g.Gap <= 0:
		return errors.Errorf("grid gap must be positive, got %v", g.Gap)
	case g.Mass <= 0:
		return errors.Errorf("point mass must be positive, got %v", g.Mass)
	case g.Stiffness < 0 || g.Stiffness > 1:
		return errors.Errorf("link stiffness must be within [0, 1], got %v", g.Stiffness)
	case g.TearDistance <= 0:
		return errors.Errorf("tear distance must be positive, got %v", g.TearDistance)
	}
	return nil
}

// idx maps grid coordinates to an arena index. Points are laid out column by column.
func (g Grid) idx(x, y int) int {
	return x*g.Rows + y
}

// neighbour looks up the point at grid coordinates {x, y}.
// A miss means the generator is broken, so it panics.
func (g Grid) neighbour(points []PointMass, x, y int) int {
	if x < 0 || x >= g.Columns || y < 0 || y >= g.Rows {
		panic(fmt.Sprintf("cloth: no grid point at (%d, %d)", x, y))
	}
	i := g.idx(x, y)
	want := r2.Vec{X: g.Offset.X + float64(x)*g.Gap, Y: g.Offset.Y + float64(y)*g.Gap}
	if points[i].pos != want {
		panic(fmt.Sprintf("cloth: grid point %d is at %v, expected %v", i, points[i].pos, want))
	}
	return i
}

// Generate builds the points, links and quads of the grid. Every point gets
// a link to the point above and to the point on its left, and every point
// having both of them closes a quad.
func (g Grid) Generate() ([]PointMass, []Link, []Quad) {
	points := make([]PointMass, 0, g.Columns*g.Rows)
	for x := 0; x < g.Columns; x++ {
		for y := 0; y < g.Rows; y++ {
			pos := r2.Vec{X: g.Offset.X + float64(x)*g.Gap, Y: g.Offset.Y + float64(y)*g.Gap}
			points = append(points, NewPointMass(pos, g.Mass, y == 0))
		}
	}

	links := make([]Link, 0, g.Columns*(g.Rows-1)+(g.Columns-1)*g.Rows)
	quads := make([]Quad, 0, (g.Columns-1)*(g.Rows-1))
	for x := 0; x < g.Columns; x++ {
		for y := 0; y < g.Rows; y++ {
			self := g.idx(x, y)
			if y > 0 {
				links = append(links, g.link(self, g.neighbour(points, x, y-1)))
			}
			if x > 0 {
				links = append(links, g.link(self, g.neighbour(points, x-1, y)))
			}
			if x > 0 && y > 0 {
				quads = append(quads, Quad{
					self,
					g.neighbour(points, x-1, y),
					g.neighbour(points, x, y-1),
					g.neighbour(points, x-1, y-1),
				})
			}
		}
	}
	return points, links, quads
}

func (g Grid) link(p1, p2 int) Link {
	return NewLink(p1, p2, g.RestingDistance, g.Stiffness, g.TearDistance)
}
