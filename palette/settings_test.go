package palette

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestSettings_Palette(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  bool
	}{
		{
			name:     "cosine",
			settings: Settings{Procedural: ProceduralCosine},
		},
		{
			name:     "grayscale",
			settings: Settings{Procedural: ProceduralGrayscale},
		},
		{
			name:     "hsv with defaults",
			settings: Settings{Procedural: ProceduralHSV},
		},
		{
			name: "gradients",
			settings: Settings{
				Gradients: []GradientSettings{
					{StartColor: color.RGBA{A: 255}, EndColor: color.RGBA{R: 255, A: 255}, NumberColors: 8},
				},
			},
		},
		{
			name: "control points",
			settings: Settings{
				ControlPoints: []ControlPoint{
					{Position: 0, Color: color.RGBA{A: 255}},
					{Position: 1, Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
				},
			},
		},
		{
			name:     "unknown procedural",
			settings: Settings{Procedural: "neon"},
			wantErr:  true,
		},
		{
			name:     "empty settings",
			settings: Settings{},
			wantErr:  true,
		},
		{
			name: "gradient too short",
			settings: Settings{
				Gradients: []GradientSettings{
					{NumberColors: 1},
				},
			},
			wantErr: true,
		},
		{
			name: "invalid control points",
			settings: Settings{
				ControlPoints: []ControlPoint{
					{Position: 0.5},
					{Position: 0.2},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.settings.Palette()
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected an error for %+v", tt.settings)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if p == nil {
				t.Error("Palette() = nil without error")
			}
		})
	}
}

func TestSettings_GradientExpansion(t *testing.T) {
	black := color.RGBA{A: 255}
	red := color.RGBA{R: 255, A: 255}
	settings := Settings{
		Gradients: []GradientSettings{
			{StartColor: black, EndColor: red, NumberColors: 8},
		},
	}

	p, err := settings.Palette()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got := p.At(0); got != black {
		t.Errorf("At(0) = %v, want %v", got, black)
	}
	if got := p.At(1); got != red {
		t.Errorf("At(1) = %v, want %v", got, red)
	}
	if got := p.At(0.5); got.R < 100 || got.R > 155 {
		t.Errorf("At(0.5) = %v, want roughly half red", got)
	}
}

func TestLoadSettings(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "palette.json")
	contents := `{
		"Gradients": [
			{"StartColor": {"R": 0, "G": 0, "B": 0, "A": 255},
			 "EndColor": {"R": 255, "G": 128, "B": 0, "A": 255},
			 "NumberColors": 16}
		]
	}`
	if err := os.WriteFile(fileName, []byte(contents), 0o644); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	settings, err := LoadSettings(fileName)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(settings.Gradients) != 1 || settings.Gradients[0].NumberColors != 16 {
		t.Errorf("loaded settings = %+v, want the configured gradient", settings)
	}
	if _, err := settings.Palette(); err != nil {
		t.Errorf("unexpected error building the loaded palette: %s", err)
	}

	if _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
