package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/spf13/cobra"

	"orbitbrot/fractal"
	"orbitbrot/misc"
	"orbitbrot/palette"
	"orbitbrot/render"
)

var (
	boundary, centerX, centerY, halfHeight, juliaIm, juliaRe, multibrotN float64
	trapRadius, trapX, trapY                                             float64
	height, superSampling, width, workers                                uint
	maxIterations                                                        uint
	fractalName, outFile, paletteName, paletteFile                       string
	regionName, settingsFile, trapShape                                  string
	periodicityCheck, smoothColoring                                     bool
)

// Classic regions of the Mandelbrot set, handy starting points for zooms.
var regions = map[string]fractal.Viewport{
	"seahorse-valley": {CenterX: -0.75, CenterY: 0.1, HalfHeight: 0.05},
	"elephant-valley": {CenterX: -1.8, CenterY: -0.06, HalfHeight: 0.04},
	"spiral-minibrot": {CenterX: -0.74275, CenterY: 0.13175, HalfHeight: 0.00075},
	"triple-spiral":   {CenterX: -0.7465, CenterY: 0.0965, HalfHeight: 0.0015},
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		// Cobra already printed the error.
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orbitbrot",
		Short: "Render escape-time fractals with orbit-trap coloring",
		Args:  cobra.ExactArgs(0),
		RunE:  run,
	}

	cmd.Flags().StringVar(&settingsFile, "settings", "", "Json file with run settings, overrides the other flags")

	cmd.Flags().UintVar(&width, "width", 1920, "Width of the resulting image")
	cmd.Flags().UintVar(&height, "height", 1080, "Height of the resulting image")
	cmd.Flags().UintVar(&superSampling, "superSampling", 1, "Sub-pixel grid size per pixel")
	cmd.Flags().UintVar(&workers, "workers", 0, "Number of render workers, 0 uses all CPUs")

	cmd.Flags().Float64Var(&centerX, "centerX", -0.5, "Center x value of the viewport")
	cmd.Flags().Float64Var(&centerY, "centerY", 0, "Center y value of the viewport")
	cmd.Flags().Float64Var(&halfHeight, "halfHeight", 1.25, "Half the viewport height on the complex plane")
	cmd.Flags().StringVar(&regionName, "region", "", "Named region to render instead of centerX/centerY/halfHeight")

	cmd.Flags().Float64Var(&boundary, "boundary", 4.0, "Escape radius squared")
	cmd.Flags().UintVar(&maxIterations, "maxIterations", 1000, "Iterations to run to verify each point")
	cmd.Flags().BoolVar(&periodicityCheck, "periodicityCheck", false, "Short-circuit interior orbits that repeat")
	cmd.Flags().BoolVar(&smoothColoring, "smoothColoring", true, "Enable smooth coloring")

	cmd.Flags().StringVar(&fractalName, "fractal", "mandelbrot", "Recurrence to iterate: mandelbrot, julia or multibrot")
	cmd.Flags().Float64Var(&juliaRe, "juliaRe", -0.8, "Real part of the julia constant")
	cmd.Flags().Float64Var(&juliaIm, "juliaIm", 0.156, "Imaginary part of the julia constant")
	cmd.Flags().Float64Var(&multibrotN, "multibrotN", 3, "Exponent of the multibrot recurrence")

	cmd.Flags().StringVar(&trapShape, "trap", "", "Orbit trap shape: point, circle or cross (empty disables trapping)")
	cmd.Flags().Float64Var(&trapX, "trapX", 0, "Trap center x value")
	cmd.Flags().Float64Var(&trapY, "trapY", 0, "Trap center y value")
	cmd.Flags().Float64Var(&trapRadius, "trapRadius", 0.25, "Trap radius for the circle shape")

	cmd.Flags().StringVar(&paletteName, "palette", "cosine", "Procedural palette: cosine, hsv or grayscale")
	cmd.Flags().StringVar(&paletteFile, "paletteFile", "", "Json file with a color palette, overrides --palette")

	cmd.Flags().StringVar(&outFile, "out", "mandelbrot.png", "Output image path")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	// Usage is no help for errors past this point.
	cmd.SilenceUsage = true
	logger := bslogger.NewLogger("Orbitbrot", bslogger.Normal, nil)

	settings, err := runSettings()
	if err != nil {
		return err
	}
	if err := settings.Verify(); err != nil {
		return err
	}

	recurrence, err := recurrenceFromFlags()
	if err != nil {
		return err
	}

	f, err := fractal.New(settings.FractalSettings, recurrence)
	if err != nil {
		return err
	}

	pal, err := settings.PaletteSettings.Palette()
	if err != nil {
		return err
	}
	colorizer, err := palette.NewColorizer(pal, settings.ColorizerSettings)
	if err != nil {
		return err
	}

	if len(settings.TransitionSettings) > 0 {
		sequence, err := render.NewSequence(settings, f, colorizer)
		if err != nil {
			return err
		}
		return sequence.Render()
	}

	renderer, err := render.NewRenderer(settings.RenderSettings, settings.Viewport, f, colorizer)
	if err != nil {
		return err
	}
	if err := misc.SavePNG(outFile, renderer.Render()); err != nil {
		return err
	}
	logger.Infof("Saved image to %s", outFile)

	return nil
}

func runSettings() (render.RunSettings, error) {
	if settingsFile != "" {
		return render.LoadRunSettings(settingsFile)
	}

	viewport := fractal.Viewport{CenterX: centerX, CenterY: centerY, HalfHeight: halfHeight}
	if regionName != "" {
		region, ok := regions[regionName]
		if !ok {
			return render.RunSettings{}, fmt.Errorf("unknown region: %q", regionName)
		}
		viewport = region
	}

	settings := render.RunSettings{
		ColorizerSettings: palette.ColorizerSettings{
			InteriorColor:  color.RGBA{A: 255},
			IterationScale: 0.02,
		},
		FractalSettings: fractal.Settings{
			Boundary:         boundary,
			MaxIterations:    maxIterations,
			PeriodicityCheck: periodicityCheck,
			SmoothColoring:   smoothColoring,
		},
		PaletteSettings: palette.Settings{Procedural: paletteName},
		RenderSettings: render.Settings{
			Height:        height,
			SuperSampling: int(superSampling),
			Width:         width,
			Workers:       int(workers),
		},
		Viewport: viewport,
	}

	if trapShape != "" {
		settings.FractalSettings.Trap = &fractal.TrapSettings{
			Radius: trapRadius,
			Shape:  trapShape,
			X:      trapX,
			Y:      trapY,
		}
		settings.ColorizerSettings.TrapDecay = 5
		settings.ColorizerSettings.TrapScale = 0.3
	}

	if paletteFile != "" {
		paletteSettings, err := palette.LoadSettings(paletteFile)
		if err != nil {
			return settings, err
		}
		settings.PaletteSettings = paletteSettings
	}

	return settings, nil
}

func recurrenceFromFlags() (fractal.Recurrence, error) {
	switch fractalName {
	case "mandelbrot":
		return nil, nil
	case "julia":
		return fractal.Julia{C: complex(juliaRe, juliaIm)}, nil
	case "multibrot":
		return fractal.Multibrot{N: complex(multibrotN, 0)}, nil
	}
	return nil, fmt.Errorf("unknown fractal: %q", fractalName)
}
