package fractal

import "math/cmplx"

// A Recurrence defines the iterated function of an escape-time fractal: the
// starting value for a plane point c and the step z -> next z.
type Recurrence interface {
	Start(c complex128) complex128
	Next(z complex128, c complex128) complex128
}

// Mandelbrot iterates z^2 + c from zero. Evaluation uses a specialized
// component-arithmetic loop instead of this type; it exists so the default
// recurrence is still expressible wherever a Recurrence is expected.
type Mandelbrot struct{}

func (Mandelbrot) Start(complex128) complex128 { return 0 }

func (Mandelbrot) Next(z complex128, c complex128) complex128 { return z*z + c }

// Julia iterates z^2 + C from the plane point itself, with a constant C.
type Julia struct {
	C complex128
}

func (j Julia) Start(c complex128) complex128 { return c }

func (j Julia) Next(z complex128, _ complex128) complex128 { return z*z + j.C }

// Multibrot iterates z^N + c from zero.
type Multibrot struct {
	N complex128
}

func (Multibrot) Start(complex128) complex128 { return 0 }

func (m Multibrot) Next(z complex128, c complex128) complex128 { return cmplx.Pow(z, m.N) + c }
