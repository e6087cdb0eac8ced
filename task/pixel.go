package task

import (
	"fmt"
	"image/color"
)

type Pixel struct {
	Color  color.RGBA
	Column uint
	Row    uint
}

func (p *Pixel) String() string {
	return fmt.Sprintf("{Pixel Color: %v Column: %d Row: %d}", p.Color, p.Column, p.Row)
}
