package input

import (
	"fmt"

	"github.com/pkg/errors"

	cloth "github.com/esimov/ascii-cloth/cloth-solver"
	"gonum.org/v1/gonum/spatial/r2"
)

// Kind tells which tool a gesture drives.
type Kind int

const (
	Drag Kind = iota
	Cut
)

func (k Kind) String() string {
	switch k {
	case Drag:
		return "drag"
	case Cut:
		return "cut"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps the wire name of a gesture to its kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "drag":
		return Drag, nil
	case "cut":
		return Cut, nil
	}
	return 0, errors.Errorf("unknown gesture %q", s)
}

// Gesture is a single pointer event expressed in simulation coordinates.
// Delta is the pointer motion since the previous event.
type Gesture struct {
	Kind  Kind
	Pos   r2.Vec
	Delta r2.Vec
}

// Apply runs the gesture against c and returns how many points (drag) or
// links (cut) it affected. A cut follows the pointer path from Pos-Delta
// to Pos.
func (g Gesture) Apply(c *cloth.Cloth) int {
	switch g.Kind {
	case Drag:
		return c.Drag(g.Pos, g.Delta)
	case Cut:
		return c.CutAlong(r2.Sub(g.Pos, g.Delta), g.Pos)
	}
	return 0
}
