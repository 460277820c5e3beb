package cloth

import "gonum.org/v1/gonum/spatial/r2"

// accelScale couples the accumulated force of a sub-step to the distance
// travelled during that sub-step.
const accelScale = 0.05

// PointMass defines a single particle of the cloth. Its velocity is never
// stored; it is derived from the distance between the current and the
// previous position.
type PointMass struct {
	pos     r2.Vec
	prevPos r2.Vec
	acc     r2.Vec
	mass    float64
	anchor  bool
	deleted bool
}

// NewPointMass spawns a resting point at pos.
func NewPointMass(pos r2.Vec, mass float64, anchor bool) PointMass {
	return PointMass{
		pos:     pos,
		prevPos: pos,
		mass:    mass,
		anchor:  anchor,
	}
}

// Pos retrieves the current position of the point.
func (p *PointMass) Pos() r2.Vec {
	return p.pos
}

// SetPos moves the point without touching its previous position,
// so the displacement is carried over as velocity on the next sub-step.
func (p *PointMass) SetPos(pos r2.Vec) {
	p.pos = pos
}

// PrevPos retrieves the position the point had one sub-step ago.
func (p *PointMass) PrevPos() r2.Vec {
	return p.prevPos
}

// Velocity returns the implicit velocity of the point.
func (p *PointMass) Velocity() r2.Vec {
	return r2.Sub(p.pos, p.prevPos)
}

// Mass returns the mass of the point.
func (p *PointMass) Mass() float64 {
	return p.mass
}

// IsAnchor reports whether the point is pinned in place.
func (p *PointMass) IsAnchor() bool {
	return p.anchor
}

// IsDeleted reports whether the point has been torn away.
func (p *PointMass) IsDeleted() bool {
	return p.deleted
}

// SetDeleted marks the point as torn away.
func (p *PointMass) SetDeleted(deleted bool) {
	p.deleted = deleted
}

// ApplyForce accumulates a force for the current sub-step.
func (p *PointMass) ApplyForce(f r2.Vec) {
	p.acc = r2.Add(p.acc, r2.Scale(1/p.mass, f))
}

// Integrate advances the point by one Verlet sub-step of dt milliseconds
// and reflects it off the [0, bounds] box.
func (p *PointMass) Integrate(dt, gravity float64, bounds r2.Vec) {
	if p.anchor {
		return
	}
	p.ApplyForce(r2.Vec{Y: gravity * p.mass})

	vel := r2.Sub(p.pos, p.prevPos)
	next := r2.Add(r2.Add(p.pos, vel), r2.Scale(accelScale*dt, p.acc))

	p.prevPos = p.pos
	p.pos = next

	reflect(&p.pos.X, &p.prevPos.X, bounds.X)
	reflect(&p.pos.Y, &p.prevPos.Y, bounds.Y)

	p.acc = r2.Vec{}
}

// reflect clamps a single axis to [0, max]. When the point was still moving
// outward the previous position is mirrored, so the next derived velocity
// points back inside.
func reflect(pos, prev *float64, max float64) {
	step := *pos - *prev
	switch {
	case *pos < 0:
		*pos = 0
		if step < 0 {
			*prev = *pos + step
		}
	case *pos > max:
		*pos = max
		if step > 0 {
			*prev = *pos + step
		}
	}
}
