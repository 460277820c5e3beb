package cloth

import "time"

// Stepper converts variable frame times into a whole number of fixed
// sub-steps, carrying the remainder over to the next frame.
type Stepper struct {
	timestep time.Duration
	leftover time.Duration
}

// NewStepper creates a stepper advancing in increments of timestep.
func NewStepper(timestep time.Duration) *Stepper {
	if timestep <= 0 {
		panic("cloth: timestep must be positive")
	}
	return &Stepper{timestep: timestep}
}

// Advance adds the elapsed frame time and returns how many sub-steps are due.
func (s *Stepper) Advance(elapsed time.Duration) int {
	total := elapsed + s.leftover
	if total < 0 {
		total = 0
	}
	steps := total / s.timestep
	s.leftover = total - steps*s.timestep

	return int(steps)
}

// Timestep returns the fixed sub-step duration.
func (s *Stepper) Timestep() time.Duration {
	return s.timestep
}

// Leftover returns the time carried over to the next frame.
func (s *Stepper) Leftover() time.Duration {
	return s.leftover
}

// Reset drops the carried over time.
func (s *Stepper) Reset() {
	s.leftover = 0
}

// millis expresses d in fractional milliseconds.
func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
