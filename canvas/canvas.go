// Package canvas is the in memory surface render passes paint onto.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

type Canvas struct {
	image *image.RGBA
}

func NewCanvas(width int, height int) *Canvas {
	return &Canvas{
		image: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// PaintPixel sets one pixel. Pixels outside of the canvas are ignored.
func (c *Canvas) PaintPixel(x int, y int, col color.RGBA) {
	c.image.SetRGBA(x, y, col)
}

func (c *Canvas) Image() *image.RGBA {
	return c.image
}

func (c *Canvas) Bounds() image.Rectangle {
	return c.image.Bounds()
}

// SavePNG encodes the canvas to path
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create image %s: %w", path, err)
	}
	if err := png.Encode(f, c.image); err != nil {
		f.Close()
		return fmt.Errorf("unable to encode image %s: %w", path, err)
	}
	return f.Close()
}
