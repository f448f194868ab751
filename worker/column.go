package worker

import (
	"image/color"

	"StripedMandelbrot/mandelbrot"
	"StripedMandelbrot/palette"
	"StripedMandelbrot/task"
)

// ComputeColumn evaluates every row of column for the given viewport and returns the pixels in row order
func ComputeColumn(column int, viewport mandelbrot.Viewport, width int, height int, options mandelbrot.Options, table palette.Table) []task.Pixel {
	t := task.NewTask(0, column, 1, viewport, width, height, options, table)
	return Compute(t).Rows
}

// Compute evaluates the column described by t. It only reads t and may run in any goroutine or process.
func Compute(t task.Task) task.Result {
	escapeRadiusSquared := t.EscapeRadius * t.EscapeRadius
	rows := make([]task.Pixel, t.Height)
	for row := 0; row < t.Height; row++ {
		cReal, cImaginary := t.Point(row)
		escape := mandelbrot.Evaluate(cReal, cImaginary, t.MaxIterations, escapeRadiusSquared)
		c, ok := escape.Color(t.Table, color.RGBA{})
		rows[row] = task.Pixel{
			Color:    c,
			Interior: !ok,
			Row:      row,
		}
	}
	return task.Result{
		Generation: t.Generation,
		Column:     t.Column,
		Rows:       rows,
	}
}
