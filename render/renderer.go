// Package render drives the per-pixel pipeline over a raster: plane
// transform, escape-time evaluation, palette mapping, pixel write. Work is
// split into tasks owning disjoint pixel sets, so workers never contend on
// the output buffer.
package render

import (
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/BrugadaSyndrome/bslogger"

	"orbitbrot/fractal"
	"orbitbrot/palette"
	"orbitbrot/task"
)

type Renderer struct {
	colorizer palette.Colorizer
	fractal   fractal.Fractal
	logger    bslogger.Logger
	settings  Settings
	subPixels []float64
	transform fractal.PlaneTransform
}

// NewRenderer validates all configuration up front; a constructed renderer
// cannot fail mid-render.
func NewRenderer(settings Settings, viewport fractal.Viewport, f fractal.Fractal, colorizer palette.Colorizer) (Renderer, error) {
	if err := settings.Verify(); err != nil {
		return Renderer{}, err
	}
	transform, err := fractal.NewPlaneTransform(viewport, settings.Width, settings.Height)
	if err != nil {
		return Renderer{}, err
	}

	// Grid supersampling offsets. A single entry at 0 samples pixel centers.
	subPixels := make([]float64, settings.SuperSampling)
	subPixels[0] = 0
	if settings.SuperSampling > 1 {
		for i := 0; i < settings.SuperSampling; i++ {
			subPixels[i] = ((0.5 + float64(i)) / float64(settings.SuperSampling)) - 0.5
		}
	}

	return Renderer{
		colorizer: colorizer,
		fractal:   f,
		logger:    bslogger.NewLogger("Renderer", bslogger.Normal, nil),
		settings:  settings,
		subPixels: subPixels,
		transform: transform,
	}, nil
}

// Render computes the full raster. Workers pull tasks from a channel and
// return results; each pixel is written exactly once during ingestion.
func (r *Renderer) Render() *image.RGBA {
	startTime := time.Now()

	img := image.NewRGBA(image.Rect(0, 0, int(r.settings.Width), int(r.settings.Height)))

	tasksTodo := make(chan task.Task, r.settings.Workers)
	tasksDone := make(chan task.Task, r.settings.Workers)

	go r.generateTasks(tasksTodo)

	var workerWait sync.WaitGroup
	for i := 0; i < r.settings.Workers; i++ {
		workerWait.Add(1)
		go r.processTasks(tasksTodo, tasksDone, &workerWait)
	}
	go func() {
		workerWait.Wait()
		close(tasksDone)
	}()

	var pixelsDone uint
	for taskDone := range tasksDone {
		for i := 0; i < len(taskDone.Results); i++ {
			result := taskDone.Results[i]
			img.SetRGBA(int(result.Column), int(result.Row), result.Color)
			pixelsDone++
		}
	}

	r.logger.Debugf("Rendered %d pixels in %s", pixelsDone, time.Since(startTime))
	return img
}

func (r *Renderer) generateTasks(tasksTodo chan<- task.Task) {
	var taskCount uint
	switch r.settings.TaskGeneration {
	case task.Row:
		var row uint
		for row = 0; row < r.settings.Height; row++ {
			taskTodo := task.NewTask(taskCount)
			taskTodo.AddCoordinatesForRow(row, r.settings.Width)
			tasksTodo <- taskTodo
			taskCount++
		}
	case task.Column:
		var column uint
		for column = 0; column < r.settings.Width; column++ {
			taskTodo := task.NewTask(taskCount)
			taskTodo.AddCoordinatesForColumn(column, r.settings.Height)
			tasksTodo <- taskTodo
			taskCount++
		}
	case task.Image:
		taskTodo := task.NewTask(taskCount)
		taskTodo.AddCoordinatesForImage(r.settings.Height, r.settings.Width)
		tasksTodo <- taskTodo
		taskCount++
	}
	close(tasksTodo)

	r.logger.Debugf("Generated %d tasks", taskCount)
}

func (r *Renderer) processTasks(tasksTodo <-chan task.Task, tasksDone chan<- task.Task, workerWait *sync.WaitGroup) {
	defer workerWait.Done()

	for taskTodo := range tasksTodo {
		for i := 0; i < len(taskTodo.Coordinates); i++ {
			coordinate := taskTodo.Coordinates[i]
			taskTodo.AddResult(task.Pixel{
				Color:  r.pixelColor(coordinate),
				Column: coordinate.Column,
				Row:    coordinate.Row,
			})
		}
		tasksDone <- taskTodo
	}
}

func (r *Renderer) pixelColor(coordinate task.Coordinate) color.RGBA {
	if len(r.subPixels) == 1 {
		x, y := r.transform.PointAt(coordinate.Column, coordinate.Row)
		return r.colorizer.Color(r.fractal.Escape(x, y))
	}

	// Average the supersampled colors channel-wise.
	var red, green, blue int
	for _, xOffset := range r.subPixels {
		for _, yOffset := range r.subPixels {
			x, y := r.transform.PointAtOffset(coordinate.Column, coordinate.Row, xOffset, yOffset)
			sample := r.colorizer.Color(r.fractal.Escape(x, y))
			red += int(sample.R)
			green += int(sample.G)
			blue += int(sample.B)
		}
	}
	divisor := len(r.subPixels) * len(r.subPixels)
	return color.RGBA{
		R: uint8(red / divisor),
		G: uint8(green / divisor),
		B: uint8(blue / divisor),
		A: 255,
	}
}
