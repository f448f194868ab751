package palette

import (
	"errors"
	"fmt"
	"sort"
)

var ErrInvalidInput = errors.New("invalid input")

// Interpolant is a monotone cubic (Fritsch-Carlson) interpolant over a set of control points.
// https://en.wikipedia.org/wiki/Monotone_cubic_interpolation
type Interpolant struct {
	constant float64
	xs       []float64
	ys       []float64
	c1s      []float64
	c2s      []float64
	c3s      []float64
}

func NewInterpolant(xs []float64, ys []float64) (Interpolant, error) {
	length := len(xs)
	if length != len(ys) {
		return Interpolant{}, fmt.Errorf("%w: %d positions and %d values", ErrInvalidInput, len(xs), len(ys))
	}
	if length == 0 {
		return Interpolant{}, nil
	}
	if length == 1 {
		return Interpolant{constant: ys[0]}, nil
	}

	// Sort the points by x without touching the callers slices
	indexes := make([]int, length)
	for i := range indexes {
		indexes[i] = i
	}
	sort.Slice(indexes, func(a, b int) bool {
		return xs[indexes[a]] < xs[indexes[b]]
	})

	ip := Interpolant{
		xs: make([]float64, length),
		ys: make([]float64, length),
	}
	for i, index := range indexes {
		ip.xs[i] = xs[index]
		ip.ys[i] = ys[index]
	}

	// Consecutive differences and slopes
	dxs := make([]float64, length-1)
	ms := make([]float64, length-1)
	for i := 0; i < length-1; i++ {
		dxs[i] = ip.xs[i+1] - ip.xs[i]
		ms[i] = (ip.ys[i+1] - ip.ys[i]) / dxs[i]
	}

	// Degree 1 coefficients
	ip.c1s = make([]float64, 0, length)
	ip.c1s = append(ip.c1s, ms[0])
	for i := 0; i < len(dxs)-1; i++ {
		m, mNext := ms[i], ms[i+1]
		if m*mNext <= 0 {
			ip.c1s = append(ip.c1s, 0)
			continue
		}
		dx, dxNext := dxs[i], dxs[i+1]
		common := dx + dxNext
		ip.c1s = append(ip.c1s, 3*common/((common+dxNext)/m+(common+dx)/mNext))
	}
	ip.c1s = append(ip.c1s, ms[len(ms)-1])

	// Degree 2 and 3 coefficients
	ip.c2s = make([]float64, length-1)
	ip.c3s = make([]float64, length-1)
	for i := 0; i < length-1; i++ {
		c1, m := ip.c1s[i], ms[i]
		invDx := 1 / dxs[i]
		common := c1 + ip.c1s[i+1] - m - m
		ip.c2s[i] = (m - c1 - common) * invDx
		ip.c3s[i] = common * invDx * invDx
	}

	return ip, nil
}

// At evaluates the interpolant. Control positions return their value exactly, positions outside of the control
// range are extrapolated with the nearest segment.
func (ip Interpolant) At(x float64) float64 {
	if ip.xs == nil {
		return ip.constant
	}

	last := len(ip.xs) - 1
	if x == ip.xs[last] {
		return ip.ys[last]
	}

	low, high := 0, len(ip.c3s)-1
	for low <= high {
		mid := (low + high) / 2
		switch here := ip.xs[mid]; {
		case here < x:
			low = mid + 1
		case here > x:
			high = mid - 1
		default:
			return ip.ys[mid]
		}
	}
	j := max(0, high)

	diff := x - ip.xs[j]
	diffSq := diff * diff
	return ip.ys[j] + ip.c1s[j]*diff + ip.c2s[j]*diffSq + ip.c3s[j]*diff*diffSq
}
