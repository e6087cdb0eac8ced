package palette

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"orbitbrot/misc"
)

// CosinePalette is a closed-form palette: each channel follows
// bias + amplitude*cos(2*pi*(frequency*t + phase)), clamped to [0, 1].
// Continuous in t for any parameter choice.
type CosinePalette struct {
	Amplitude [3]float64
	Bias      [3]float64
	Frequency [3]float64
	Phase     [3]float64
}

func (p CosinePalette) At(t float64) color.RGBA {
	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v := p.Bias[i] + p.Amplitude[i]*math.Cos(2*math.Pi*(p.Frequency[i]*t+p.Phase[i]))
		channels[i] = uint8(misc.ClampFloat64(v, 0, 1) * 255)
	}
	return color.RGBA{R: channels[0], G: channels[1], B: channels[2], A: 255}
}

// DefaultCosine cycles through the full spectrum once over [0, 1].
var DefaultCosine = CosinePalette{
	Amplitude: [3]float64{0.5, 0.5, 0.5},
	Bias:      [3]float64{0.5, 0.5, 0.5},
	Frequency: [3]float64{1, 1, 1},
	Phase:     [3]float64{0, 1.0 / 3.0, 2.0 / 3.0},
}

// HSVPalette sweeps the hue circle at fixed saturation and value. The hue
// wraps, so t = 1 lands on the same red as t = 0.
type HSVPalette struct {
	Saturation float64
	Value      float64
}

func (p HSVPalette) At(t float64) color.RGBA {
	hue := math.Mod(misc.ClampFloat64(t, 0, 1), 1) * 360
	c := colorful.Hsv(hue, p.Saturation, p.Value)
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// GrayscalePalette maps t straight to luminance.
type GrayscalePalette struct{}

func (GrayscalePalette) At(t float64) color.RGBA {
	l := uint8(misc.ClampFloat64(t, 0, 1) * 255)
	return color.RGBA{R: l, G: l, B: l, A: 255}
}
