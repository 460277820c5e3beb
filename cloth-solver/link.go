package cloth

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	linkRelaxed = colorful.Color{R: 1, G: 1, B: 1}
	linkStrain  = colorful.Color{R: 1, G: 0, B: 0}
)

// Link is a distance constraint between two points of the cloth arena.
// It refers to its endpoints by index, so any number of links can share a point.
type Link struct {
	p1, p2 int

	restingDistance float64
	stiffness       float64
	tearDistance    float64

	deleted bool
	color   colorful.Color
}

// NewLink binds the points at index p1 and p2. Both must be distinct.
func NewLink(p1, p2 int, restingDistance, stiffness, tearDistance float64) Link {
	if p1 == p2 {
		panic(fmt.Sprintf("cloth: link endpoints must differ, got %d twice", p1))
	}
	return Link{
		p1:              p1,
		p2:              p2,
		restingDistance: restingDistance,
		stiffness:       stiffness,
		tearDistance:    tearDistance,
		color:           linkRelaxed,
	}
}

// P1 returns the arena index of the first endpoint.
func (l *Link) P1() int { return l.p1 }

// P2 returns the arena index of the second endpoint.
func (l *Link) P2() int { return l.p2 }

// RestingDistance returns the length the link pulls its endpoints towards.
func (l *Link) RestingDistance() float64 {
	return l.restingDistance
}

// Stiffness returns the fraction of the correction applied per solve.
func (l *Link) Stiffness() float64 {
	return l.stiffness
}

// TearDistance returns the length past which the link tears.
func (l *Link) TearDistance() float64 {
	return l.tearDistance
}

// IsDeleted reports whether the link was torn or cut.
func (l *Link) IsDeleted() bool {
	return l.deleted
}

// Color returns the tension colour computed by the last solve.
func (l *Link) Color() colorful.Color {
	return l.color
}

// Cut deletes the link together with both of its endpoints.
func (l *Link) Cut(points []PointMass) {
	l.deleted = true
	points[l.p1].deleted = true
	points[l.p2].deleted = true
}

// Solve pulls both endpoints toward the resting distance, weighted by their
// inverse mass. A link stretched past its tear distance is cut, but the
// correction of this call is still applied.
func (l *Link) Solve(points []PointMass) {
	if l.deleted {
		return
	}
	a, b := &points[l.p1], &points[l.p2]

	delta := r2.Sub(a.pos, b.pos)
	d := r2.Norm(delta)
	if d == 0 {
		return
	}
	l.color = tensionColor(d, l.tearDistance)

	difference := (l.restingDistance - d) / d
	translate := r2.Scale(0.5*difference, delta)

	im1 := 1 / a.mass
	im2 := 1 / b.mass
	scalarP1 := im1 / (im1 + im2) * l.stiffness

	if d > l.tearDistance {
		l.Cut(points)
	}
	if !a.anchor {
		a.pos = r2.Add(a.pos, r2.Scale(scalarP1, translate))
	}
	if !b.anchor {
		b.pos = r2.Sub(b.pos, r2.Scale(l.stiffness-scalarP1, translate))
	}
}

// tensionColor blends from white toward red as d approaches the tear distance.
// Both the red channel and the blend factor are quantised, to 1/255 and 1/100.
func tensionColor(d, tearDistance float64) colorful.Color {
	tension := math.Min(d, tearDistance) / tearDistance
	red := linkStrain
	red.R = math.Floor(tension*255) / 255
	return linkRelaxed.BlendRgb(red, math.Floor(tension*100)/100)
}
