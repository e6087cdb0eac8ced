package palette

import (
	"fmt"
	"image/color"
	"math"

	"orbitbrot/fractal"
)

// Colorizer turns escape-time results into pixel colors. Interior points get
// a fixed color; escaped points derive a scalar from the smooth iteration
// count and the orbit-trap distance and look it up in the palette.
type Colorizer struct {
	interiorColor  color.RGBA
	iterationScale float64
	palette        Palette
	trapDecay      float64
	trapScale      float64
}

// ColorizerSettings configures the result-to-scalar mapping.
type ColorizerSettings struct {
	InteriorColor  color.RGBA
	IterationScale float64 // palette distance covered per iteration
	TrapDecay      float64 // decay rate of the trap term, larger favors closer passes
	TrapScale      float64 // weight of the trap term, 0 disables it
}

func (cs *ColorizerSettings) Verify() error {
	if cs.IterationScale < 0 {
		return fmt.Errorf("iteration scale must not be negative, got %f", cs.IterationScale)
	}
	if cs.TrapScale < 0 {
		return fmt.Errorf("trap scale must not be negative, got %f", cs.TrapScale)
	}
	if cs.TrapScale > 0 && cs.TrapDecay <= 0 {
		return fmt.Errorf("trap decay must be positive, got %f", cs.TrapDecay)
	}
	return nil
}

func NewColorizer(palette Palette, settings ColorizerSettings) (Colorizer, error) {
	if palette == nil {
		return Colorizer{}, fmt.Errorf("a palette is required")
	}
	if err := settings.Verify(); err != nil {
		return Colorizer{}, err
	}

	return Colorizer{
		interiorColor:  settings.InteriorColor,
		iterationScale: settings.IterationScale,
		palette:        palette,
		trapDecay:      settings.TrapDecay,
		trapScale:      settings.TrapScale,
	}, nil
}

// Color maps one result to its pixel color. The escaped scalar wraps around
// the palette so deep zooms keep cycling instead of saturating at 1.
func (c *Colorizer) Color(result fractal.Result) color.RGBA {
	if !result.Escaped {
		return c.interiorColor
	}

	t := result.Smooth * c.iterationScale
	if c.trapScale > 0 {
		t += math.Exp(-c.trapDecay*result.TrapDistance) * c.trapScale
	}
	// The smooth count can dip below zero for points with a huge final
	// magnitude, and math.Mod keeps the sign, so fold twice to land in [0, 1).
	t = math.Mod(math.Mod(t, 1)+1, 1)

	return c.palette.At(t)
}

// InteriorColor reports the color used for points that never escaped.
func (c *Colorizer) InteriorColor() color.RGBA {
	return c.interiorColor
}
