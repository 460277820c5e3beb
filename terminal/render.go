package terminal

import (
	"fmt"
	"math"

	cloth "github.com/esimov/ascii-cloth/cloth-solver"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	pointGlyph  = '●'
	linkGlyph   = '·'
	cursorGlyph = '○'
)

var pointColor = RGB{200, 100, 100}

// View holds the presentation switches flipped by the keyboard shortcuts.
type View struct {
	ShowUI        bool
	ShowWireframe bool
	ShowCloth     bool
}

// DefaultView shows the shaded cloth and the HUD.
func DefaultView() View {
	return View{ShowUI: true, ShowCloth: true}
}

// Scene is everything a frame is drawn from.
type Scene struct {
	Cloth    *cloth.Cloth
	View     View
	Viewport Viewport
	Camera   r2.Vec
	Cursor   *r2.Vec
	FPS      int
}

// Render draws the scene into cv. It only reads the cloth.
func Render(cv *Canvas, s Scene) {
	cv.Clear()

	c := s.Cloth
	if s.View.ShowCloth {
		for _, q := range c.Quads() {
			if !c.QuadVisible(q) {
				continue
			}
			renderQuad(cv, s, c.QuadPoints(q))
		}
	}

	if s.View.ShowWireframe {
		links := c.Links()
		for i := range links {
			l := &links[i]
			if l.IsDeleted() {
				continue
			}
			a, b := c.Endpoints(l)
			x0, y0 := s.Viewport.ToCellInt(a.Pos(), s.Camera)
			x1, y1 := s.Viewport.ToCellInt(b.Pos(), s.Camera)
			r, g, bl := l.Color().RGB255()
			cv.Line(x0, y0, x1, y1, linkGlyph, RGB{r, g, bl})
		}
		points := c.Points()
		for i := range points {
			if points[i].IsDeleted() {
				continue
			}
			x, y := s.Viewport.ToCellInt(points[i].Pos(), s.Camera)
			cv.Put(x, y, pointGlyph, pointColor)
		}
	}

	if s.Cursor != nil {
		x, y := s.Viewport.ToCellInt(*s.Cursor, r2.Vec{})
		cv.Put(x, y, cursorGlyph, Green)
	}

	if s.View.ShowUI {
		for i, line := range hud(s) {
			cv.Text(0, i, line, Yellow, Black)
		}
	}
}

// renderQuad shades one cell of the cloth. The colour follows the area of
// the cell, so stretched parts of the cloth turn brighter.
func renderQuad(cv *Canvas, s Scene, p [4]*cloth.PointMass) {
	// self, left, above, diagonal drawn as left, self, above, diagonal
	order := [4]int{1, 0, 2, 3}

	var xs, ys [4]float64
	for i, k := range order {
		xs[i], ys[i] = s.Viewport.ToCell(p[k].Pos(), s.Camera)
	}
	width := r2.Norm(r2.Sub(p[1].Pos(), p[0].Pos()))
	height := r2.Norm(r2.Sub(p[2].Pos(), p[3].Pos()))
	area := width * height / 2

	cv.Polygon(xs[:], ys[:], RGB{uint8(math.Min(area, 255)), 50, 150})
}

func hud(s Scene) []string {
	return []string{
		fmt.Sprintf("FPS: %d", s.FPS),
		fmt.Sprintf("Step: %v", s.Cloth.Stepper().Timestep()),
		fmt.Sprintf("[G]ravity: %s", onOff(s.Cloth.Settings().Gravity != 0)),
		fmt.Sprintf("[W]ireframe: %s", onOff(s.View.ShowWireframe)),
		fmt.Sprintf("[C]loth: %s", onOff(s.View.ShowCloth)),
	}
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
