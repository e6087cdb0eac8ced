package palette

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"

	"orbitbrot/misc"
)

const (
	ProceduralCosine    = "cosine"
	ProceduralGrayscale = "grayscale"
	ProceduralHSV       = "hsv"
)

// GradientSettings expands into NumberColors evenly spaced colors between
// StartColor and EndColor.
type GradientSettings struct {
	EndColor     color.RGBA
	NumberColors int
	StartColor   color.RGBA
}

// Settings is the serializable form of a palette: either a procedural
// formula, a list of gradients, or explicit control points.
type Settings struct {
	ControlPoints []ControlPoint
	Gradients     []GradientSettings
	Procedural    string
	Saturation    float64
	Value         float64
}

// LoadSettings reads palette settings from a JSON file.
func LoadSettings(fileName string) (Settings, error) {
	var s Settings
	fileBytes, err := misc.ReadFile(fileName)
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(fileBytes, &s); err != nil {
		return s, fmt.Errorf("unable to parse palette file %s - %s", fileName, err)
	}
	return s, nil
}

// Palette builds the configured palette, validating it in the process.
func (s *Settings) Palette() (Palette, error) {
	switch s.Procedural {
	case ProceduralCosine:
		return DefaultCosine, nil
	case ProceduralGrayscale:
		return GrayscalePalette{}, nil
	case ProceduralHSV:
		saturation, value := s.Saturation, s.Value
		if saturation == 0 {
			saturation = 1
		}
		if value == 0 {
			value = 1
		}
		return HSVPalette{Saturation: saturation, Value: value}, nil
	case "":
	default:
		return nil, fmt.Errorf("unknown procedural palette: %q", s.Procedural)
	}

	if len(s.Gradients) > 0 {
		colors := make([]color.RGBA, 0)
		for i := 0; i < len(s.Gradients); i++ {
			gradient := s.Gradients[i]
			if gradient.NumberColors < 2 {
				return nil, fmt.Errorf("gradient %d needs at least 2 colors, got %d", i, gradient.NumberColors)
			}
			for j := 0; j < gradient.NumberColors; j++ {
				fraction := float64(j) / float64(gradient.NumberColors-1)
				colors = append(colors, color.RGBA{
					R: misc.LerpUint8(gradient.StartColor.R, gradient.EndColor.R, fraction),
					G: misc.LerpUint8(gradient.StartColor.G, gradient.EndColor.G, fraction),
					B: misc.LerpUint8(gradient.StartColor.B, gradient.EndColor.B, fraction),
					A: 255,
				})
			}
		}
		return NewGradientPalette(colors...)
	}

	if len(s.ControlPoints) > 0 {
		return NewControlPointPalette(s.ControlPoints)
	}

	return nil, errors.New("palette settings define no palette")
}
