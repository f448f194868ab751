// Package mandelbrot evaluates points of the complex plane against the Mandelbrot recurrence.
package mandelbrot

import (
	"image/color"
	"math"
)

var mathLog2 = math.Log(2)

// Escape is the outcome of iterating a single point
type Escape struct {
	Iterations int
	Escaped    bool

	// Smoothed is the fractional correction to Iterations, only valid when Escaped is true
	Smoothed float64
}

// Evaluate iterates z = z^2 + c from z = 0 until the orbit leaves the escape radius or maxIterations is reached.
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Optimized_escape_time_algorithms
func Evaluate(cReal float64, cImaginary float64, maxIterations int, escapeRadiusSquared float64) Escape {
	zReal, zImaginary := 0.0, 0.0
	zReal2, zImaginary2 := 0.0, 0.0
	iterations := 0
	for zReal2+zImaginary2 <= escapeRadiusSquared && iterations < maxIterations {
		zImaginary = 2*zReal*zImaginary + cImaginary
		zReal = zReal2 - zImaginary2 + cReal
		zReal2 = zReal * zReal
		zImaginary2 = zImaginary * zImaginary
		iterations++
	}

	// Checked after the loop, so a point escaping on the final iteration still counts as escaped
	if zReal2+zImaginary2 <= escapeRadiusSquared {
		return Escape{Iterations: iterations}
	}

	// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Continuous_(smooth)_coloring
	modulus := math.Sqrt(zReal2 + zImaginary2)
	return Escape{
		Iterations: iterations,
		Escaped:    true,
		Smoothed:   math.Log(math.Log(modulus)/mathLog2) / mathLog2,
	}
}

// ColorIndex maps an escaped point into a table of size colors. The result is normalized into [0, size) even when
// the scaled value is negative. It returns false when the inputs do not produce a finite index.
func ColorIndex(iterations int, smoothed float64, size int) (int, bool) {
	if size <= 0 {
		return 0, false
	}
	scaled := math.Sqrt(float64(iterations)+1-smoothed)*256 - 200
	if math.IsNaN(scaled) || math.IsInf(scaled, 0) {
		return 0, false
	}
	index := int(math.Floor(scaled))
	return ((index % size) + size) % size, true
}

// Color resolves the escape against table. Points that did not escape, or whose index is not finite, return
// interior with false.
func (e Escape) Color(table []color.RGBA, interior color.RGBA) (color.RGBA, bool) {
	if !e.Escaped {
		return interior, false
	}
	index, ok := ColorIndex(e.Iterations, e.Smoothed, len(table))
	if !ok {
		return interior, false
	}
	return table[index], true
}
