package task

import "fmt"

const (
	Row Generation = iota
	Column
	Image
)

// Generation selects how the raster is partitioned into tasks. Any
// partitioning produces the same image; granularity only affects how evenly
// work spreads across workers.
type Generation int

func (g Generation) String() string {
	return []string{
		"Row", "Column", "Image",
	}[g]
}

// Task is a disjoint set of pixel coordinates owned by exactly one worker.
// Workers fill Results with one pixel per coordinate, in order.
type Task struct {
	Coordinates []Coordinate
	ID          uint
	Results     []Pixel
}

func NewTask(id uint) Task {
	return Task{
		ID: id,
	}
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("ID: %d ", t.ID)
	output += fmt.Sprintf("Coordinate Count: %d ", len(t.Coordinates))
	output += fmt.Sprintf("Result Count: %d}", len(t.Results))
	return output
}

func (t *Task) AddCoordinate(coordinate Coordinate) {
	t.Coordinates = append(t.Coordinates, coordinate)
}

func (t *Task) AddCoordinatesForRow(imageRow uint, imageWidth uint) {
	var c uint
	for c = 0; c < imageWidth; c++ {
		t.AddCoordinate(Coordinate{Column: c, Row: imageRow})
	}
}

func (t *Task) AddCoordinatesForColumn(imageColumn uint, imageHeight uint) {
	var r uint
	for r = 0; r < imageHeight; r++ {
		t.AddCoordinate(Coordinate{Column: imageColumn, Row: r})
	}
}

func (t *Task) AddCoordinatesForImage(imageHeight uint, imageWidth uint) {
	var r uint
	for r = 0; r < imageHeight; r++ {
		t.AddCoordinatesForRow(r, imageWidth)
	}
}

func (t *Task) AddResult(pixel Pixel) {
	t.Results = append(t.Results, pixel)
}
