package task

import (
	"fmt"
	"image/color"
)

// Pixel is one row of a computed column. Interior pixels did not escape and carry no table color.
type Pixel struct {
	Color    color.RGBA
	Interior bool
	Row      int
}

func (p *Pixel) String() string {
	output := "{Pixel "
	output += fmt.Sprintf("Color: %v ", p.Color)
	output += fmt.Sprintf("Interior: %t ", p.Interior)
	output += fmt.Sprintf("Row: %d}", p.Row)
	return output
}
