package fractal

import (
	"fmt"
	"math"
)

// A Trap is a fixed geometry in the complex plane with a distance function.
// Orbit trapping colors a pixel by how close its orbit ever came to the trap.
type Trap interface {
	Distance(x float64, y float64) float64
}

// PointTrap measures the distance to a single point.
type PointTrap struct {
	X float64
	Y float64
}

func (t PointTrap) Distance(x float64, y float64) float64 {
	return math.Hypot(x-t.X, y-t.Y)
}

// CircleTrap measures the distance to the circle of the given radius.
type CircleTrap struct {
	Radius float64
	X      float64
	Y      float64
}

func (t CircleTrap) Distance(x float64, y float64) float64 {
	return math.Abs(math.Hypot(x-t.X, y-t.Y) - t.Radius)
}

// CrossTrap measures the distance to the nearer of two axis-aligned lines
// crossing at (X, Y).
type CrossTrap struct {
	X float64
	Y float64
}

func (t CrossTrap) Distance(x float64, y float64) float64 {
	return math.Min(math.Abs(x-t.X), math.Abs(y-t.Y))
}

const (
	TrapShapePoint  = "point"
	TrapShapeCircle = "circle"
	TrapShapeCross  = "cross"
)

// TrapSettings is the serializable form of a trap geometry.
type TrapSettings struct {
	Radius float64
	Shape  string
	X      float64
	Y      float64
}

func (ts *TrapSettings) Verify() error {
	switch ts.Shape {
	case TrapShapePoint, TrapShapeCross:
	case TrapShapeCircle:
		if ts.Radius <= 0 {
			return fmt.Errorf("circle trap radius must be positive, got %f", ts.Radius)
		}
	default:
		return fmt.Errorf("unknown trap shape: %q", ts.Shape)
	}
	return nil
}

func (ts *TrapSettings) Trap() Trap {
	switch ts.Shape {
	case TrapShapePoint:
		return PointTrap{X: ts.X, Y: ts.Y}
	case TrapShapeCircle:
		return CircleTrap{Radius: ts.Radius, X: ts.X, Y: ts.Y}
	case TrapShapeCross:
		return CrossTrap{X: ts.X, Y: ts.Y}
	}
	return nil
}
