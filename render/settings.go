package render

import (
	"encoding/json"
	"fmt"
	"runtime"
	"time"

	"orbitbrot/fractal"
	"orbitbrot/misc"
	"orbitbrot/palette"
	"orbitbrot/task"
)

// Settings holds the raster dimensions and execution knobs of one render.
type Settings struct {
	Height         uint
	SuperSampling  int
	TaskGeneration task.Generation
	Width          uint
	Workers        int
}

func (s *Settings) Verify() error {
	if s.Width == 0 || s.Height == 0 {
		return fmt.Errorf("raster dimensions must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.SuperSampling < 0 {
		return fmt.Errorf("super sampling must not be negative, got %d", s.SuperSampling)
	}
	if s.SuperSampling == 0 {
		s.SuperSampling = 1
	}
	if s.TaskGeneration < task.Row || s.TaskGeneration > task.Image {
		return fmt.Errorf("unknown task generation type: %d", s.TaskGeneration)
	}
	if s.Workers <= 0 {
		s.Workers = runtime.NumCPU()
	}
	return nil
}

func (s *Settings) String() string {
	output := "{Settings "
	output += fmt.Sprintf("Width: %d ", s.Width)
	output += fmt.Sprintf("Height: %d ", s.Height)
	output += fmt.Sprintf("SuperSampling: %d ", s.SuperSampling)
	output += fmt.Sprintf("TaskGeneration: %s ", s.TaskGeneration)
	output += fmt.Sprintf("Workers: %d}", s.Workers)
	return output
}

// RunSettings aggregates everything one invocation needs, so a run can be
// reproduced from a single JSON file.
type RunSettings struct {
	ColorizerSettings  palette.ColorizerSettings
	FractalSettings    fractal.Settings
	PaletteSettings    palette.Settings
	RenderSettings     Settings
	RunName            string
	SavePath           string
	TransitionSettings []TransitionSettings
	Viewport           fractal.Viewport
}

// LoadRunSettings reads run settings from a JSON file.
func LoadRunSettings(fileName string) (RunSettings, error) {
	var s RunSettings
	fileBytes, err := misc.ReadFile(fileName)
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(fileBytes, &s); err != nil {
		return s, fmt.Errorf("unable to parse settings file %s - %s", fileName, err)
	}
	return s, nil
}

func (s *RunSettings) Verify() error {
	if err := s.RenderSettings.Verify(); err != nil {
		return err
	}
	if err := s.FractalSettings.Verify(); err != nil {
		return err
	}
	if err := s.Viewport.Verify(); err != nil {
		return err
	}
	if err := s.ColorizerSettings.Verify(); err != nil {
		return err
	}
	for i := 0; i < len(s.TransitionSettings); i++ {
		if err := s.TransitionSettings[i].Verify(); err != nil {
			return err
		}
	}
	if s.RunName == "" {
		s.RunName = "run_" + time.Now().Format("2006_01_02-03_04_05")
	}
	return nil
}
