package mandelbrot

import (
	"errors"
	"fmt"
	"math"

	"StripedMandelbrot/misc"
)

var ErrDegenerateViewport = errors.New("degenerate viewport")

const panIncrement = 0.02

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	names := []string{"Up", "Right", "Down", "Left"}
	if d < 0 || int(d) >= len(names) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return names[d]
}

// Viewport is the region of the complex plane mapped onto the canvas
type Viewport struct {
	MinReal      float64
	MaxReal      float64
	MinImaginary float64
	MaxImaginary float64
}

var DefaultViewport = Viewport{
	MinReal:      -2,
	MaxReal:      1.3,
	MinImaginary: -1.4,
	MaxImaginary: 1.5,
}

func (v Viewport) String() string {
	return fmt.Sprintf("{Viewport Real: [%g, %g] Imaginary: [%g, %g]}", v.MinReal, v.MaxReal, v.MinImaginary, v.MaxImaginary)
}

// Verify rejects viewports that would produce non finite pixel factors
func (v Viewport) Verify() error {
	for _, bound := range []float64{v.MinReal, v.MaxReal, v.MinImaginary, v.MaxImaginary} {
		if math.IsNaN(bound) || math.IsInf(bound, 0) {
			return fmt.Errorf("%w: non finite bound in %s", ErrDegenerateViewport, v)
		}
	}
	if v.MaxReal <= v.MinReal {
		return fmt.Errorf("%w: real axis [%g, %g]", ErrDegenerateViewport, v.MinReal, v.MaxReal)
	}
	if v.MaxImaginary <= v.MinImaginary {
		return fmt.Errorf("%w: imaginary axis [%g, %g]", ErrDegenerateViewport, v.MinImaginary, v.MaxImaginary)
	}
	return nil
}

// Factors returns the size of one pixel along each axis
func (v Viewport) Factors(width int, height int) (realFactor float64, imaginaryFactor float64) {
	return (v.MaxReal - v.MinReal) / float64(width), (v.MaxImaginary - v.MinImaginary) / float64(height)
}

// PointAt converts the (x, y) pixel of a width by height canvas to the complex plane
func (v Viewport) PointAt(x int, y int, width int, height int) (float64, float64) {
	realFactor, imaginaryFactor := v.Factors(width, height)
	return v.MinReal + float64(x)*realFactor, v.MinImaginary + float64(y)*imaginaryFactor
}

// FitAspect widens one axis around its center so the viewport has the same aspect ratio as the canvas
func (v Viewport) FitAspect(width int, height int) Viewport {
	ratio := (v.MaxReal - v.MinReal) / (v.MaxImaginary - v.MinImaginary)
	canvasRatio := float64(width) / float64(height)
	if canvasRatio > ratio {
		v.MinReal, v.MaxReal = scaleAround(v.MinReal, v.MaxReal, canvasRatio/ratio)
	} else {
		v.MinImaginary, v.MaxImaginary = scaleAround(v.MinImaginary, v.MaxImaginary, ratio/canvasRatio)
	}
	return v
}

func scaleAround(low float64, high float64, factor float64) (float64, float64) {
	center := (low + high) / 2
	half := (high - low) / 2 * factor
	return center - half, center + half
}

// Zoom shrinks the viewport toward (pointReal, pointImaginary) by factor and centers it on that point. A factor below one
// zooms out.
func (v Viewport) Zoom(pointReal float64, pointImaginary float64, factor float64) Viewport {
	t := 1 / factor
	v.MinReal = misc.LerpFloat64(pointReal, v.MinReal, t)
	v.MaxReal = misc.LerpFloat64(pointReal, v.MaxReal, t)
	v.MinImaginary = misc.LerpFloat64(pointImaginary, v.MinImaginary, t)
	v.MaxImaginary = misc.LerpFloat64(pointImaginary, v.MaxImaginary, t)

	deltaReal := (v.MinReal+v.MaxReal)/2 - pointReal
	deltaImaginary := (v.MinImaginary+v.MaxImaginary)/2 - pointImaginary
	v.MinReal -= deltaReal
	v.MaxReal -= deltaReal
	v.MinImaginary -= deltaImaginary
	v.MaxImaginary -= deltaImaginary
	return v
}

// Pan shifts the viewport by a small step derived from the imaginary bounds
func (v Viewport) Pan(direction Direction) Viewport {
	increment := math.Min(math.Abs(v.MinImaginary*panIncrement), math.Abs(v.MaxImaginary*panIncrement))
	switch direction {
	case Up:
		v.MinImaginary += increment
		v.MaxImaginary += increment
	case Right:
		v.MinReal += increment
		v.MaxReal += increment
	case Down:
		v.MinImaginary -= increment
		v.MaxImaginary -= increment
	case Left:
		v.MinReal -= increment
		v.MaxReal -= increment
	}
	return v
}
