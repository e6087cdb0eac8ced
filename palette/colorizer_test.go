package palette

import (
	"image/color"
	"testing"

	"orbitbrot/fractal"
)

func TestNewColorizer_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		palette  Palette
		settings ColorizerSettings
	}{
		{
			name:     "nil palette",
			palette:  nil,
			settings: ColorizerSettings{IterationScale: 0.02},
		},
		{
			name:     "negative iteration scale",
			palette:  GrayscalePalette{},
			settings: ColorizerSettings{IterationScale: -1},
		},
		{
			name:     "negative trap scale",
			palette:  GrayscalePalette{},
			settings: ColorizerSettings{TrapScale: -0.5},
		},
		{
			name:     "trap scale without decay",
			palette:  GrayscalePalette{},
			settings: ColorizerSettings{TrapScale: 0.3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewColorizer(tt.palette, tt.settings); err == nil {
				t.Errorf("expected an error for %+v", tt.settings)
			}
		})
	}
}

func TestColorizer_InteriorColor(t *testing.T) {
	interior := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	c, err := NewColorizer(GrayscalePalette{}, ColorizerSettings{
		InteriorColor:  interior,
		IterationScale: 0.02,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	got := c.Color(fractal.Result{Escaped: false, Iterations: 100, Smooth: 100})
	if got != interior {
		t.Errorf("Color(interior result) = %v, want %v", got, interior)
	}
}

func TestColorizer_CloserTrapPassIsBrighter(t *testing.T) {
	// With a grayscale palette and only the trap term active, a pass close to
	// the trap must land further up the scale than a distant one.
	c, err := NewColorizer(GrayscalePalette{}, ColorizerSettings{
		TrapDecay: 5,
		TrapScale: 0.9,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	near := c.Color(fractal.Result{Escaped: true, Iterations: 10, Smooth: 10, TrapDistance: 0.01})
	far := c.Color(fractal.Result{Escaped: true, Iterations: 10, Smooth: 10, TrapDistance: 2})
	if near.R <= far.R {
		t.Errorf("near pass %v is not brighter than far pass %v", near, far)
	}
}

func TestColorizer_IterationScaleWraps(t *testing.T) {
	c, err := NewColorizer(GrayscalePalette{}, ColorizerSettings{IterationScale: 0.02})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	// 60 iterations puts the scalar at 1.2, which wraps to 0.2 instead of
	// clamping to the end of the palette.
	got := c.Color(fractal.Result{Escaped: true, Iterations: 60, Smooth: 60})
	want := GrayscalePalette{}.At(0.2)
	if channelDelta(got, want) > 1 {
		t.Errorf("Color(60 iterations) = %v, want about %v", got, want)
	}
}

func TestColorizer_NegativeSmoothWrapsUpward(t *testing.T) {
	c, err := NewColorizer(GrayscalePalette{}, ColorizerSettings{IterationScale: 1})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	// A first-iteration escape with a huge final magnitude yields a smooth
	// count below zero; the scalar wraps up into [0, 1) rather than pinning
	// the pixel to the bottom of the palette.
	got := c.Color(fractal.Result{Escaped: true, Iterations: 1, Smooth: -0.3})
	want := GrayscalePalette{}.At(0.7)
	if channelDelta(got, want) > 1 {
		t.Errorf("Color(negative smooth) = %v, want about %v", got, want)
	}
}
