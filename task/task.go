package task

import (
	"fmt"

	"StripedMandelbrot/mandelbrot"
	"StripedMandelbrot/palette"
)

// Task is everything a worker needs to compute one column of a render pass. It is a snapshot taken when the pass
// starts and is never modified afterwards.
type Task struct {
	Generation uint64
	Column     int
	Stride     int
	Height     int

	MinReal         float64
	MinImaginary    float64
	RealFactor      float64
	ImaginaryFactor float64

	MaxIterations int
	EscapeRadius  float64
	Table         palette.Table
}

func NewTask(generation uint64, column int, stride int, viewport mandelbrot.Viewport, width int, height int, options mandelbrot.Options, table palette.Table) Task {
	realFactor, imaginaryFactor := viewport.Factors(width, height)
	return Task{
		Generation:      generation,
		Column:          column,
		Stride:          stride,
		Height:          height,
		MinReal:         viewport.MinReal,
		MinImaginary:    viewport.MinImaginary,
		RealFactor:      realFactor,
		ImaginaryFactor: imaginaryFactor,
		MaxIterations:   options.MaxIterations,
		EscapeRadius:    options.EscapeRadius,
		Table:           table,
	}
}

// Next returns the task for the column one stride further along, or false once width is reached
func (t Task) Next(width int) (Task, bool) {
	next := t
	next.Column += t.Stride
	return next, next.Column < width
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("Generation: %d ", t.Generation)
	output += fmt.Sprintf("Column: %d ", t.Column)
	output += fmt.Sprintf("Stride: %d ", t.Stride)
	output += fmt.Sprintf("Height: %d}", t.Height)
	return output
}

// Result is the computed column of a Task
type Result struct {
	Generation uint64
	Column     int
	Rows       []Pixel
}

func (r *Result) String() string {
	output := "{Result "
	output += fmt.Sprintf("Generation: %d ", r.Generation)
	output += fmt.Sprintf("Column: %d ", r.Column)
	output += fmt.Sprintf("Row Count: %d}", len(r.Rows))
	return output
}
