package mandelbrot

import (
	"image/color"
	"math"
	"testing"
)

func TestEvaluateInterior(t *testing.T) {
	points := []struct {
		name       string
		cReal      float64
		cImaginary float64
	}{
		{"origin", 0, 0},
		{"main cardioid", -0.1, 0.1},
		{"period two bulb", -1, 0},
	}

	for _, p := range points {
		for _, maxIterations := range []int{1, 2, 50, 1000} {
			escape := Evaluate(p.cReal, p.cImaginary, maxIterations, 4)
			if escape.Escaped {
				t.Errorf("%s escaped after %d iterations with max %d", p.name, escape.Iterations, maxIterations)
			}
			if escape.Iterations != maxIterations {
				t.Errorf("%s iterations = %d, want %d", p.name, escape.Iterations, maxIterations)
			}
		}
	}
}

func TestEvaluateFarOutside(t *testing.T) {
	escape := Evaluate(5, 5, 1000, 4*4)
	if !escape.Escaped {
		t.Fatal("5+5i did not escape")
	}
	if escape.Iterations != 1 {
		t.Errorf("iterations = %d, want 1", escape.Iterations)
	}

	want := 1.4966812273146735
	if math.Abs(escape.Smoothed-want) > 1e-12 {
		t.Errorf("smoothed = %.16f, want %.16f", escape.Smoothed, want)
	}
}

func TestEvaluateEscapesOnLastIteration(t *testing.T) {
	escape := Evaluate(5, 5, 1, 4)
	if !escape.Escaped || escape.Iterations != 1 {
		t.Errorf("Evaluate() = %+v, want escaped after 1 iteration", escape)
	}
}

func TestEvaluateIterationCount(t *testing.T) {
	// c = 1: 1, 2, 5 so the orbit leaves radius 2 on the third step
	escape := Evaluate(1, 0, 100, 4)
	if !escape.Escaped || escape.Iterations != 3 {
		t.Errorf("Evaluate(1, 0) = %+v, want escaped after 3 iterations", escape)
	}
}

func TestColorIndex(t *testing.T) {
	tests := []struct {
		name       string
		iterations int
		smoothed   float64
		size       int
		want       int
		ok         bool
	}{
		{"regression fixture", 10, 0.5, 2048, 629, true},
		{"wraps negative index", 1, 1.4966812273146735, 2048, 2029, true},
		{"wraps large index", 100, 0, 2048, 324, true},
		{"small table", 3, 0.25, 16, 7, true},
		{"nan", 10, math.NaN(), 2048, 0, false},
		{"infinite", 10, math.Inf(-1), 2048, 0, false},
		{"sqrt of a negative", 1, 5, 2048, 0, false},
		{"empty table", 10, 0.5, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ColorIndex(tt.iterations, tt.smoothed, tt.size)
			if ok != tt.ok {
				t.Fatalf("ColorIndex() ok = %t, want %t", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ColorIndex() = %d, want %d", got, tt.want)
			}
			if ok && (got < 0 || got >= tt.size) {
				t.Errorf("ColorIndex() = %d outside [0, %d)", got, tt.size)
			}
		})
	}
}

func TestEscapeColor(t *testing.T) {
	table := make([]color.RGBA, 2048)
	for i := range table {
		table[i] = color.RGBA{R: uint8(i), G: uint8(i >> 8), A: 255}
	}
	interior := color.RGBA{B: 9, A: 255}

	c, ok := Escape{Iterations: 1000}.Color(table, interior)
	if ok || c != interior {
		t.Errorf("bounded point = %v %t, want interior", c, ok)
	}

	c, ok = Escape{Iterations: 10, Escaped: true, Smoothed: 0.5}.Color(table, interior)
	if !ok || c != table[629] {
		t.Errorf("escaped point = %v %t, want %v", c, ok, table[629])
	}

	c, ok = Escape{Iterations: 10, Escaped: true, Smoothed: math.NaN()}.Color(table, interior)
	if ok || c != interior {
		t.Errorf("nan point = %v %t, want interior", c, ok)
	}
}
