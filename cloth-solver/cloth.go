package cloth

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// Settings holds the process wide simulation parameters. It is created at
// startup, mutated by the input handlers and read on every sub-step.
type Settings struct {
	// Gravity is the acceleration currently applied. BaseGravity is the
	// value restored when gravity is toggled back on.
	Gravity     float64
	BaseGravity float64

	// Bounds is the far corner of the box points bounce inside of.
	Bounds r2.Vec

	// DragRadius selects the points moved by Drag and DragGain scales the
	// displacement applied to them.
	DragRadius float64
	DragGain   float64
}

// ToggleGravity switches gravity off, or back to its base value.
func (s *Settings) ToggleGravity() {
	if s.Gravity != 0 {
		s.Gravity = 0
	} else {
		s.Gravity = s.BaseGravity
	}
}

// Cloth owns the point, link and quad arenas and drives the fixed timestep.
// Deleted entities are never removed, only flagged.
type Cloth struct {
	grid     Grid
	settings *Settings
	stepper  *Stepper

	points []PointMass
	links  []Link
	quads  []Quad
}

// New validates the grid and generates the initial cloth.
func New(grid Grid, settings *Settings, timestep time.Duration) (*Cloth, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	c := &Cloth{
		grid:     grid,
		settings: settings,
		stepper:  NewStepper(timestep),
	}
	c.Reset()

	return c, nil
}

// Reset regenerates the cloth from its grid.
func (c *Cloth) Reset() {
	c.points, c.links, c.quads = c.grid.Generate()
	c.stepper.Reset()
}

// Grid returns the layout the cloth is generated from.
func (c *Cloth) Grid() Grid {
	return c.grid
}

// Settings returns the runtime settings shared with the front end.
func (c *Cloth) Settings() *Settings {
	return c.settings
}

// Stepper returns the fixed-timestep accumulator driving Update.
func (c *Cloth) Stepper() *Stepper {
	return c.stepper
}

// Points returns the point arena. Links and quads index into it.
func (c *Cloth) Points() []PointMass {
	return c.points
}

func (c *Cloth) Links() []Link {
	return c.links
}

func (c *Cloth) Quads() []Quad {
	return c.quads
}

// Point returns the point stored at index i.
func (c *Cloth) Point(i int) *PointMass {
	return &c.points[i]
}

// Endpoints returns both points bound by l.
func (c *Cloth) Endpoints(l *Link) (*PointMass, *PointMass) {
	return &c.points[l.p1], &c.points[l.p2]
}

// QuadPoints returns the four points of q, in quad order.
func (c *Cloth) QuadPoints(q Quad) [4]*PointMass {
	return [4]*PointMass{&c.points[q[0]], &c.points[q[1]], &c.points[q[2]], &c.points[q[3]]}
}

// Step runs a single sub-step: every live link is solved first, then every
// point is integrated from the constrained positions.
func (c *Cloth) Step() {
	for i := range c.links {
		c.links[i].Solve(c.points)
	}
	dt := millis(c.stepper.timestep)
	for i := range c.points {
		c.points[i].Integrate(dt, c.settings.Gravity, c.settings.Bounds)
	}
}

// Update feeds the elapsed frame time to the stepper and runs the sub-steps
// it asks for. It returns the number of sub-steps executed.
func (c *Cloth) Update(elapsed time.Duration) int {
	steps := c.stepper.Advance(elapsed)
	for i := 0; i < steps; i++ {
		c.Step()
	}
	return steps
}
