package mandelbrot

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultMaxIterations = 1000
	DefaultEscapeRadius  = 2.0
)

var ErrInvalidOptions = errors.New("invalid render options")

// Options are the per render evaluation parameters
type Options struct {
	MaxIterations int
	EscapeRadius  float64
}

func (o *Options) EscapeRadiusSquared() float64 {
	return o.EscapeRadius * o.EscapeRadius
}

func (o *Options) String() string {
	output := "{Options "
	output += fmt.Sprintf("MaxIterations: %d ", o.MaxIterations)
	output += fmt.Sprintf("EscapeRadius: %f}", o.EscapeRadius)
	return output
}

// Verify fills in unset values with defaults and rejects values that cannot be rendered
func (o *Options) Verify() error {
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.EscapeRadius == 0 {
		o.EscapeRadius = DefaultEscapeRadius
	}
	if o.MaxIterations < 0 {
		return fmt.Errorf("%w: max iterations %d", ErrInvalidOptions, o.MaxIterations)
	}
	if o.EscapeRadius < 0 || math.IsNaN(o.EscapeRadius) || math.IsInf(o.EscapeRadius, 0) {
		return fmt.Errorf("%w: escape radius %f", ErrInvalidOptions, o.EscapeRadius)
	}
	return nil
}
