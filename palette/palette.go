// Package palette builds the dense color lookup tables used to color escaped points.
package palette

import (
	"fmt"
	"image/color"
	"math"
)

// DefaultTableSize is the number of colors sampled from a gradient for a normal render
const DefaultTableSize = 2048

// Table is a precomputed gradient. It is never modified once built so a single table can be read by every worker
// of a render pass.
type Table []color.RGBA

// ControlColors are the few colors a gradient is interpolated through. Positions should be in [0, 1].
type ControlColors struct {
	Positions []float64
	Colors    []color.RGBA
}

var DefaultControlColors = ControlColors{
	Positions: []float64{0, 0.16, 0.42, 0.6425, 0.8575},
	Colors: []color.RGBA{
		{R: 0, G: 7, B: 100, A: 255},
		{R: 32, G: 107, B: 203, A: 255},
		{R: 237, G: 255, B: 255, A: 255},
		{R: 255, G: 170, B: 0, A: 255},
		{R: 0, G: 2, B: 0, A: 255},
	},
}

func (cc ControlColors) Build(size int) (Table, error) {
	return BuildGradient(cc.Positions, cc.Colors, size)
}

func (cc ControlColors) String() string {
	output := "{ControlColors "
	for i := 0; i < len(cc.Positions) && i < len(cc.Colors); i++ {
		output += fmt.Sprintf("%.4f:#%02x%02x%02x ", cc.Positions[i], cc.Colors[i].R, cc.Colors[i].G, cc.Colors[i].B)
	}
	return output + "}"
}

// BuildGradient interpolates each channel of colors through positions and samples the result at size evenly spaced
// points in [0, 1).
func BuildGradient(positions []float64, colors []color.RGBA, size int) (Table, error) {
	if len(positions) != len(colors) {
		return nil, fmt.Errorf("%w: %d positions for %d colors", ErrInvalidInput, len(positions), len(colors))
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: table size %d", ErrInvalidInput, size)
	}

	reds := make([]float64, len(colors))
	greens := make([]float64, len(colors))
	blues := make([]float64, len(colors))
	for i, c := range colors {
		reds[i] = float64(c.R)
		greens[i] = float64(c.G)
		blues[i] = float64(c.B)
	}

	channels := make([]Interpolant, 3)
	for i, values := range [][]float64{reds, greens, blues} {
		ip, err := NewInterpolant(positions, values)
		if err != nil {
			return nil, err
		}
		channels[i] = ip
	}

	table := make(Table, size)
	step := 1 / float64(size)
	for i := range table {
		x := float64(i) * step
		table[i] = color.RGBA{
			R: channel(channels[0].At(x)),
			G: channel(channels[1].At(x)),
			B: channel(channels[2].At(x)),
			A: 255,
		}
	}
	return table, nil
}

// channel rounds an interpolated value into a color channel. Extrapolating past the last control position can leave
// the [0, 255] range.
func channel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
