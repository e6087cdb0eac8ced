// Package task holds the work units handed to render workers. The viewport
// and fractal parameters are shared immutable configuration, so a coordinate
// is just a pixel location.
package task

import "fmt"

type Coordinate struct {
	Column uint
	Row    uint
}

func (c *Coordinate) String() string {
	return fmt.Sprintf("{Coordinate Column: %d Row: %d}", c.Column, c.Row)
}
