package terminal

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// RGB is a 24-bit terminal colour.
type RGB struct {
	R, G, B uint8
}

var (
	Black  = RGB{}
	White  = RGB{255, 255, 255}
	Yellow = RGB{255, 255, 0}
	Green  = RGB{0, 255, 0}
)

// Cell is a single character cell of the canvas.
type Cell struct {
	Ch     rune
	Fg, Bg RGB
}

// Canvas is the back buffer every frame is drawn into before it is handed
// to a Screen.
type Canvas struct {
	w, h  int
	cells []Cell
}

// NewCanvas allocates a blank w x h canvas.
func NewCanvas(w, h int) *Canvas {
	c := new(Canvas)
	c.Resize(w, h)
	return c
}

// Resize reallocates the back buffer.
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.w, c.h = w, h
	c.cells = make([]Cell, w*h)
	c.Clear()
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (int, int) {
	return c.w, c.h
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Ch: ' ', Fg: White, Bg: Black}
	}
}

// At returns the cell at {x, y}.
func (c *Canvas) At(x, y int) Cell {
	if !c.inside(x, y) {
		return Cell{}
	}
	return c.cells[c.w*y+x]
}

// Set overwrites the cell at {x, y}. Writes outside the canvas are dropped.
func (c *Canvas) Set(x, y int, ch rune, fg, bg RGB) {
	if !c.inside(x, y) {
		return
	}
	c.cells[c.w*y+x] = Cell{Ch: ch, Fg: fg, Bg: bg}
}

// Put writes a character keeping the background already in place.
func (c *Canvas) Put(x, y int, ch rune, fg RGB) {
	if !c.inside(x, y) {
		return
	}
	cell := &c.cells[c.w*y+x]
	cell.Ch, cell.Fg = ch, fg
}

// Paint changes the background of a cell keeping its character.
func (c *Canvas) Paint(x, y int, bg RGB) {
	if !c.inside(x, y) {
		return
	}
	c.cells[c.w*y+x].Bg = bg
}

// Line draws a segment between two cells with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int, ch rune, fg RGB) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.Put(x0, y0, ch, fg)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Polygon paints the background of every cell whose centre lies inside the
// polygon given in cell coordinates.
func (c *Canvas) Polygon(xs, ys []float64, bg RGB) {
	if len(xs) < 3 || len(xs) != len(ys) {
		return
	}
	minX, maxX, minY, maxY := xs[0], xs[0], ys[0], ys[0]
	for i := range xs {
		minX, maxX = min(minX, xs[i]), max(maxX, xs[i])
		minY, maxY = min(minY, ys[i]), max(maxY, ys[i])
	}
	for y := max(int(minY), 0); y <= min(int(maxY), c.h-1); y++ {
		for x := max(int(minX), 0); x <= min(int(maxX), c.w-1); x++ {
			if insidePolygon(float64(x)+0.5, float64(y)+0.5, xs, ys) {
				c.Paint(x, y, bg)
			}
		}
	}
}

// Text writes s starting at {x, y} and returns the number of cells used.
// Wide runes take two cells.
func (c *Canvas) Text(x, y int, s string, fg, bg RGB) int {
	start := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.Set(x, y, r, fg, bg)
		for i := 1; i < w; i++ {
			c.Set(x+i, y, 0, fg, bg)
		}
		x += w
	}
	return x - start
}

// String renders the characters of the canvas, one line per row.
// Used for debugging and snapshots.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			ch := c.cells[c.w*y+x].Ch
			if ch == 0 {
				continue
			}
			sb.WriteRune(ch)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

// insidePolygon is the even-odd rule point in polygon test.
func insidePolygon(px, py float64, xs, ys []float64) bool {
	in := false
	for i, j := 0, len(xs)-1; i < len(xs); j, i = i, i+1 {
		if (ys[i] > py) != (ys[j] > py) &&
			px < (xs[j]-xs[i])*(py-ys[i])/(ys[j]-ys[i])+xs[i] {
			in = !in
		}
	}
	return in
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
