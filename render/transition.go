package render

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/BrugadaSyndrome/bslogger"

	"orbitbrot/fractal"
	"orbitbrot/misc"
	"orbitbrot/palette"
)

// TransitionSettings describes a zoom between two plane points: the center
// eases from start to end while the magnification changes exponentially by
// MagnificationStep per frame.
type TransitionSettings struct {
	EndX               float64
	EndY               float64
	MagnificationEnd   float64
	MagnificationStart float64
	MagnificationStep  float64
	StartX             float64
	StartY             float64
}

func (ts *TransitionSettings) Verify() error {
	if ts.MagnificationStart <= 0 {
		return fmt.Errorf("magnification start must be positive, got %f", ts.MagnificationStart)
	}
	if ts.MagnificationEnd <= 0 {
		return fmt.Errorf("magnification end must be positive, got %f", ts.MagnificationEnd)
	}
	if ts.MagnificationStep <= 1 {
		return fmt.Errorf("magnification step must be above 1, got %f", ts.MagnificationStep)
	}
	return nil
}

/*
 * Use logarithms to determine the number of frames in this transition
 *
 * i.e.
 * magnification_start * magnification_step^n = magnification_end
 * n = (log(magnification_end) / log(magnification_step)) - log(magnification_start)
 */
func (ts *TransitionSettings) FrameCount() uint {
	var count float64
	if ts.MagnificationStart < ts.MagnificationEnd {
		// zooming in
		count = math.Ceil((math.Log(ts.MagnificationEnd) / math.Log(ts.MagnificationStep)) - math.Log(ts.MagnificationStart))
	} else {
		// zooming out
		count = math.Ceil((math.Log(ts.MagnificationStart) / math.Log(ts.MagnificationStep)) - math.Log(ts.MagnificationEnd))
	}
	if count < 1 {
		count = 1
	}
	return uint(count)
}

// Viewports expands the transition into one viewport per frame. The base
// viewport supplies the half-height at magnification 1; the center eases
// exponentially toward the target so deep zooms appear to move at a steady
// visual speed.
func (ts *TransitionSettings) Viewports(base fractal.Viewport) []fractal.Viewport {
	frameCount := ts.FrameCount()
	viewports := make([]fractal.Viewport, 0, frameCount)

	magnification := ts.MagnificationStart
	currentX := ts.StartX
	currentY := ts.StartY

	var currentFrame uint
	for currentFrame = 1; currentFrame <= frameCount; currentFrame++ {
		t := float64(currentFrame) / float64(frameCount)

		// zooming out
		if ts.MagnificationStart > ts.MagnificationEnd {
			currentX = misc.LerpFloat64(ts.StartX, ts.EndX, misc.EaseInExpo(t))
			currentY = misc.LerpFloat64(ts.StartY, ts.EndY, misc.EaseInExpo(t))
			magnification /= ts.MagnificationStep
		}

		viewport := base.Magnify(magnification)
		viewport.CenterX = currentX
		viewport.CenterY = currentY
		viewports = append(viewports, viewport)

		// zooming in
		if ts.MagnificationStart < ts.MagnificationEnd {
			currentX = misc.LerpFloat64(ts.StartX, ts.EndX, misc.EaseOutExpo(t))
			currentY = misc.LerpFloat64(ts.StartY, ts.EndY, misc.EaseOutExpo(t))
			magnification *= ts.MagnificationStep
		}
	}

	return viewports
}

// Sequence renders the transitions of a run as numbered PNG frames under
// savePath/runName.
type Sequence struct {
	colorizer palette.Colorizer
	fractal   fractal.Fractal
	logger    bslogger.Logger
	settings  RunSettings
}

func NewSequence(settings RunSettings, f fractal.Fractal, colorizer palette.Colorizer) (Sequence, error) {
	if err := settings.Verify(); err != nil {
		return Sequence{}, err
	}
	if len(settings.TransitionSettings) == 0 {
		return Sequence{}, fmt.Errorf("a sequence requires at least one transition")
	}

	return Sequence{
		colorizer: colorizer,
		fractal:   f,
		logger:    bslogger.NewLogger("Sequence", bslogger.Normal, nil),
		settings:  settings,
	}, nil
}

func (s *Sequence) Render() error {
	directory := filepath.Join(s.settings.SavePath, s.settings.RunName)
	if _, err := os.Stat(directory); os.IsNotExist(err) {
		if err := os.MkdirAll(directory, os.ModePerm); err != nil {
			return fmt.Errorf("unable to create folder %s - %s", directory, err)
		}
	}

	// Copy the settings to the directory so the run can be duplicated in the
	// future. The frames are the point of the run, so a failed copy only warns.
	if settingsBytes, err := json.MarshalIndent(&s.settings, "", "  "); err != nil {
		misc.CheckError(err, s.logger, misc.Warning)
	} else {
		_, err = misc.WriteFile(filepath.Join(directory, "settings.json"), settingsBytes)
		misc.CheckError(err, s.logger, misc.Warning)
	}

	startTime := time.Now()
	var frameNumber uint = 1
	for i := 0; i < len(s.settings.TransitionSettings); i++ {
		for _, viewport := range s.settings.TransitionSettings[i].Viewports(s.settings.Viewport) {
			renderer, err := NewRenderer(s.settings.RenderSettings, viewport, s.fractal, s.colorizer)
			if err != nil {
				return err
			}

			path := filepath.Join(directory, fmt.Sprintf("%d.png", frameNumber))
			if err := misc.SavePNG(path, renderer.Render()); err != nil {
				return err
			}
			s.logger.Infof("Saved frame %d to %s", frameNumber, path)
			frameNumber++
		}
	}
	s.logger.Debugf("Rendered %d frames in %s", frameNumber-1, time.Since(startTime))

	return nil
}
