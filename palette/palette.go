// Package palette maps normalized scalars in [0, 1] to colors and turns
// escape-time results into pixels.
package palette

import (
	"errors"
	"fmt"
	"image/color"

	"orbitbrot/misc"
)

// A Palette maps t in [0, 1] to a color. Values outside [0, 1] clamp to the
// nearest defined color.
type Palette interface {
	At(t float64) color.RGBA
}

// ControlPoint anchors a color at a position in [0, 1].
type ControlPoint struct {
	Color    color.RGBA
	Position float64
}

// ControlPointPalette interpolates linearly between an ordered list of
// control points.
type ControlPointPalette struct {
	points []ControlPoint
}

// NewControlPointPalette validates the control points once, so per-pixel
// lookups cannot fail. Positions must be strictly increasing and inside
// [0, 1]; at least two points are required.
func NewControlPointPalette(points []ControlPoint) (*ControlPointPalette, error) {
	if len(points) < 2 {
		return nil, errors.New("a control point palette requires at least 2 points")
	}
	for i := 0; i < len(points); i++ {
		if points[i].Position < 0 || points[i].Position > 1 {
			return nil, fmt.Errorf("control point %d position %f is outside [0, 1]", i, points[i].Position)
		}
		if i > 0 && points[i].Position <= points[i-1].Position {
			return nil, fmt.Errorf("control point positions must be strictly increasing, got %f after %f", points[i].Position, points[i-1].Position)
		}
	}

	copied := make([]ControlPoint, len(points))
	copy(copied, points)
	return &ControlPointPalette{points: copied}, nil
}

func (p *ControlPointPalette) At(t float64) color.RGBA {
	first := p.points[0]
	last := p.points[len(p.points)-1]
	if t <= first.Position {
		return first.Color
	}
	if t >= last.Position {
		return last.Color
	}

	// Palettes are short lists, so a linear scan beats anything fancier.
	i := 1
	for p.points[i].Position < t {
		i++
	}
	lower := p.points[i-1]
	upper := p.points[i]
	fraction := (t - lower.Position) / (upper.Position - lower.Position)
	return misc.LinearInterpolationRGB(lower.Color, upper.Color, fraction)
}

// NewGradientPalette spreads the given colors evenly over [0, 1].
func NewGradientPalette(colors ...color.RGBA) (*ControlPointPalette, error) {
	if len(colors) < 2 {
		return nil, errors.New("a gradient palette requires at least 2 colors")
	}
	points := make([]ControlPoint, len(colors))
	for i, c := range colors {
		points[i] = ControlPoint{
			Color:    c,
			Position: float64(i) / float64(len(colors)-1),
		}
	}
	return NewControlPointPalette(points)
}
