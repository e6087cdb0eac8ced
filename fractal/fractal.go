package fractal

import "math"

// Result is the outcome of iterating one plane point.
type Result struct {
	Escaped      bool
	Iterations   uint    // count at escape, or MaxIterations if the orbit never escaped
	Smooth       float64 // fractional iteration count when smooth coloring is enabled
	TrapDistance float64 // minimum distance from the orbit to the trap, 0 without a trap
}

// Fractal evaluates the escape time and orbit-trap distance of plane points.
// It is immutable after construction and safe for concurrent use.
type Fractal struct {
	mathLog2   float64
	recurrence Recurrence
	settings   Settings
	trap       Trap
}

// New builds an evaluator for the given settings. A nil recurrence selects
// the canonical Mandelbrot recurrence z^2 + c from z = 0, evaluated with a
// specialized inner loop; any other Recurrence is iterated generically.
func New(settings Settings, recurrence Recurrence) (Fractal, error) {
	if err := settings.Verify(); err != nil {
		return Fractal{}, err
	}
	if _, ok := recurrence.(Mandelbrot); ok {
		recurrence = nil
	}

	fractal := Fractal{
		mathLog2:   math.Log(2),
		recurrence: recurrence,
		settings:   settings,
	}
	if settings.Trap != nil {
		fractal.trap = settings.Trap.Trap()
	}

	return fractal, nil
}

func (f *Fractal) MaxIterations() uint {
	return f.settings.MaxIterations
}

// Escape iterates the recurrence for the plane point (x, y) until the squared
// magnitude reaches the boundary or MaxIterations is hit. The trap distance is
// sampled on each iterate right after the update and before the next escape
// check, so the final escaping iterate is included.
//
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Optimized_escape_time_algorithms
func (f *Fractal) Escape(x float64, y float64) Result {
	if f.recurrence != nil {
		return f.escapeGeneric(x, y)
	}

	// The squared terms x2 and y2 double as both the next real component and
	// the magnitude check, so each iteration costs three multiplications and
	// no square root.
	x1, y1, x2, y2 := 0.0, 0.0, 0.0, 0.0
	var iteration uint
	maxIterations := f.settings.MaxIterations
	minDistance := math.MaxFloat64
	period, oldX, oldY := 0, math.Inf(1), math.Inf(1)
	for x2+y2 < f.settings.Boundary && iteration < maxIterations {
		y1 = 2*x1*y1 + y
		x1 = x2 - y2 + x
		x2 = x1 * x1
		y2 = y1 * y1
		iteration++

		if f.trap != nil {
			if d := f.trap.Distance(x1, y1); d < minDistance {
				minDistance = d
			}
		}

		// Periodicity checking short-circuits interior points whose orbit
		// settled into a cycle, which helps when MaxIterations is very large.
		// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Periodicity_checking
		if f.settings.PeriodicityCheck {
			if x1 == oldX && y1 == oldY {
				iteration = maxIterations
				x2, y2 = 0, 0
				break
			}
			period++
			if period > 20 {
				period = 0
				oldX = x1
				oldY = y1
			}
		}
	}

	return f.result(iteration, x2+y2, minDistance)
}

func (f *Fractal) escapeGeneric(x float64, y float64) Result {
	c := complex(x, y)
	z := f.recurrence.Start(c)

	var iteration uint
	maxIterations := f.settings.MaxIterations
	minDistance := math.MaxFloat64
	magnitude2 := real(z)*real(z) + imag(z)*imag(z)
	for magnitude2 < f.settings.Boundary && iteration < maxIterations {
		z = f.recurrence.Next(z, c)
		iteration++

		if f.trap != nil {
			if d := f.trap.Distance(real(z), imag(z)); d < minDistance {
				minDistance = d
			}
		}

		magnitude2 = real(z)*real(z) + imag(z)*imag(z)
	}

	return f.result(iteration, magnitude2, minDistance)
}

func (f *Fractal) result(iteration uint, magnitude2 float64, minDistance float64) Result {
	result := Result{
		Escaped:    magnitude2 >= f.settings.Boundary,
		Iterations: iteration,
		Smooth:     float64(iteration),
	}
	if f.trap != nil {
		result.TrapDistance = minDistance
	}

	// Normalized iteration count removes the visible banding of the discrete
	// count; only meaningful for escaped points.
	// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Continuous_(smooth)_coloring
	if f.settings.SmoothColoring && result.Escaped {
		zn := math.Log(magnitude2) / 2
		nu := math.Log(zn/f.mathLog2) / f.mathLog2
		result.Smooth = float64(iteration) + 1 - nu
	}

	return result
}
