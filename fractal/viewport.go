package fractal

import "fmt"

// Viewport is the rectangular region of the complex plane being rendered,
// given as a center point and the half-height of the visible region. The
// visible width follows from the raster aspect ratio.
type Viewport struct {
	CenterX    float64
	CenterY    float64
	HalfHeight float64
}

func (v *Viewport) Verify() error {
	if v.HalfHeight <= 0 {
		return fmt.Errorf("viewport half-height must be positive, got %f", v.HalfHeight)
	}
	return nil
}

func (v *Viewport) String() string {
	return fmt.Sprintf("{Viewport CenterX: %f CenterY: %f HalfHeight: %f}", v.CenterX, v.CenterY, v.HalfHeight)
}

// Magnify returns a copy of the viewport zoomed by the given factor.
// Factors above 1 zoom in.
func (v Viewport) Magnify(factor float64) Viewport {
	v.HalfHeight /= factor
	return v
}

// PlaneTransform converts pixel coordinates to points on the complex plane.
// It is built once per render and is safe for concurrent use.
type PlaneTransform struct {
	centerX float64
	centerY float64
	height  float64
	step    float64
	width   float64
}

func NewPlaneTransform(viewport Viewport, width uint, height uint) (PlaneTransform, error) {
	if err := viewport.Verify(); err != nil {
		return PlaneTransform{}, err
	}
	if width == 0 || height == 0 {
		return PlaneTransform{}, fmt.Errorf("raster dimensions must be positive, got %dx%d", width, height)
	}

	return PlaneTransform{
		centerX: viewport.CenterX,
		centerY: viewport.CenterY,
		height:  float64(height),
		step:    2 * viewport.HalfHeight / float64(height),
		width:   float64(width),
	}, nil
}

// PointAt converts the (column, row) pixel to the (x, y) point on the complex plane.
//
//   - Pixels are indexed from top left to bottom right, so the pixel is shifted
//     left by half the width and up by half the height to center the raster on
//     the viewport center. Sampling happens at the pixel center (the +0.5).
//   - One step is the plane distance covered by one pixel on either axis, so
//     height pixels span twice the viewport half-height and the visible width
//     follows from the raster aspect ratio without distortion.
//   - Rows grow downward while the imaginary axis grows upward, hence the
//     subtraction for y.
//
// A raster that is a single pixel wide or tall maps to the viewport center on
// that axis.
func (t PlaneTransform) PointAt(column uint, row uint) (float64, float64) {
	return t.PointAtOffset(column, row, 0, 0)
}

// PointAtOffset is PointAt with a sub-pixel offset in [-0.5, 0.5) on each
// axis, used for supersampling.
func (t PlaneTransform) PointAtOffset(column uint, row uint, xOffset float64, yOffset float64) (float64, float64) {
	x := t.centerX + (float64(column)+0.5+xOffset-t.width/2)*t.step
	y := t.centerY - (float64(row)+0.5+yOffset-t.height/2)*t.step
	return x, y
}
