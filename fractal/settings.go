package fractal

import "fmt"

// Settings holds the per-render fractal parameters. Invalid values are
// rejected by Verify before any pixel work starts; nothing is silently
// replaced with a default.
type Settings struct {
	Boundary         float64 // escape radius squared
	MaxIterations    uint
	PeriodicityCheck bool
	SmoothColoring   bool
	Trap             *TrapSettings
}

func (s *Settings) Verify() error {
	if s.Boundary <= 0 {
		return fmt.Errorf("boundary must be positive, got %f", s.Boundary)
	}
	if s.MaxIterations == 0 {
		return fmt.Errorf("max iterations must be positive")
	}
	if s.Trap != nil {
		if err := s.Trap.Verify(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Settings) String() string {
	output := "{Settings "
	output += fmt.Sprintf("Boundary: %f ", s.Boundary)
	output += fmt.Sprintf("MaxIterations: %d ", s.MaxIterations)
	output += fmt.Sprintf("PeriodicityCheck: %t ", s.PeriodicityCheck)
	output += fmt.Sprintf("SmoothColoring: %t ", s.SmoothColoring)
	if s.Trap != nil {
		output += fmt.Sprintf("Trap: %+v", *s.Trap)
	} else {
		output += "Trap: none"
	}
	output += "}"
	return output
}
