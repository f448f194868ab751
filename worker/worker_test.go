package worker

import (
	"context"
	"errors"
	"testing"

	"StripedMandelbrot/mandelbrot"
	"StripedMandelbrot/palette"
	"StripedMandelbrot/task"
)

func testTable(t *testing.T) palette.Table {
	t.Helper()
	table, err := palette.DefaultControlColors.Build(palette.DefaultTableSize)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return table
}

func TestComputeColumnMatchesEvaluate(t *testing.T) {
	table := testTable(t)
	viewport := mandelbrot.DefaultViewport
	options := mandelbrot.Options{MaxIterations: 200, EscapeRadius: 2}
	width, height := 64, 48

	for _, column := range []int{0, 13, 63} {
		rows := ComputeColumn(column, viewport, width, height, options, table)
		if len(rows) != height {
			t.Fatalf("column %d has %d rows, want %d", column, len(rows), height)
		}
		for row, pixel := range rows {
			if pixel.Row != row {
				t.Fatalf("rows[%d].Row = %d", row, pixel.Row)
			}
			cReal, cImaginary := viewport.PointAt(column, row, width, height)
			escape := mandelbrot.Evaluate(cReal, cImaginary, options.MaxIterations, options.EscapeRadiusSquared())
			if pixel.Interior == escape.Escaped {
				t.Errorf("(%d, %d) interior = %t but escaped = %t", column, row, pixel.Interior, escape.Escaped)
			}
			if !pixel.Interior {
				want, _ := escape.Color(table, pixel.Color)
				if pixel.Color != want {
					t.Errorf("(%d, %d) color = %v, want %v", column, row, pixel.Color, want)
				}
			}
		}
	}
}

func TestComputeColumnThroughOrigin(t *testing.T) {
	// Column 2 of a 4 pixel wide [-1, 1] viewport is the imaginary axis, row 2 of 4 is the origin
	viewport := mandelbrot.Viewport{MinReal: -1, MaxReal: 1, MinImaginary: -1, MaxImaginary: 1}
	rows := ComputeColumn(2, viewport, 4, 4, mandelbrot.Options{MaxIterations: 100, EscapeRadius: 2}, testTable(t))
	if !rows[2].Interior {
		t.Errorf("origin painted %v, want interior", rows[2].Color)
	}
}

func TestComputeCarriesTaskIdentity(t *testing.T) {
	tk := task.NewTask(7, 3, 6, mandelbrot.DefaultViewport, 12, 5, mandelbrot.Options{MaxIterations: 10, EscapeRadius: 2}, testTable(t))
	result := Compute(tk)
	if result.Generation != 7 || result.Column != 3 || len(result.Rows) != 5 {
		t.Errorf("Compute() = %s", result.String())
	}
}

func TestLocalRecoversPanics(t *testing.T) {
	_, err := Local{}.RenderColumn(context.Background(), task.Task{Column: 4, Height: -1})
	if err == nil {
		t.Fatal("RenderColumn() error = nil, want the panic as an error")
	}
}

func TestLocalHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Local{}.RenderColumn(ctx, task.Task{Height: 1})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RenderColumn() error = %v, want %v", err, context.Canceled)
	}
}
