package terminal

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// cameraEase is the fraction of the camera offset removed every frame.
const cameraEase = 0.5

// Viewport stretches the simulated box over the terminal cells.
type Viewport struct {
	World r2.Vec
	Cols  int
	Rows  int
}

func (v Viewport) scale() (float64, float64) {
	if v.Cols == 0 || v.Rows == 0 {
		return 0, 0
	}
	return float64(v.Cols) / v.World.X, float64(v.Rows) / v.World.Y
}

// ToCell projects a point of the simulation, shifted by offset, to fractional
// cell coordinates.
func (v Viewport) ToCell(p, offset r2.Vec) (float64, float64) {
	sx, sy := v.scale()
	return (p.X + offset.X) * sx, (p.Y + offset.Y) * sy
}

// ToCellInt projects p to the cell containing it.
func (v Viewport) ToCellInt(p, offset r2.Vec) (int, int) {
	x, y := v.ToCell(p, offset)
	return int(math.Floor(x)), int(math.Floor(y))
}

// ToWorld maps the centre of a cell back to simulation coordinates.
func (v Viewport) ToWorld(x, y int) r2.Vec {
	sx, sy := v.scale()
	if sx == 0 || sy == 0 {
		return r2.Vec{}
	}
	return r2.Vec{X: (float64(x) + 0.5) / sx, Y: (float64(y) + 0.5) / sy}
}

// Camera is the view offset kicked by drag gestures and relaxed every frame.
type Camera struct {
	Offset r2.Vec
}

// Shake moves the view by delta.
func (c *Camera) Shake(delta r2.Vec) {
	c.Offset = delta
}

// Settle moves the view half way back to rest.
func (c *Camera) Settle() {
	c.Offset = r2.Add(c.Offset, r2.Scale(cameraEase, r2.Sub(r2.Vec{}, c.Offset)))
}
