package canvas

import (
	"image"

	"raykernel/internal/mathutil"
)

// Canvas is a grid of color tuples stored row by row for cache locality.
type Canvas struct {
	Width  int
	Height int
	pix    []mathutil.Tuple // len = Width*Height
}

// New allocates a canvas with every pixel black.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		Width:  width,
		Height: height,
		pix:    make([]mathutil.Tuple, width*height),
	}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// WritePixel sets the color at (x, y). Writes outside the canvas are dropped.
func (c *Canvas) WritePixel(x, y int, color mathutil.Tuple) {
	if !c.inBounds(x, y) {
		return
	}
	c.pix[y*c.Width+x] = color
}

// PixelAt returns the color at (x, y), or black outside the canvas.
func (c *Canvas) PixelAt(x, y int) mathutil.Tuple {
	if !c.inBounds(x, y) {
		return mathutil.Color(0, 0, 0)
	}
	return c.pix[y*c.Width+x]
}

// Fill sets every pixel to color.
func (c *Canvas) Fill(color mathutil.Tuple) {
	for i := range c.pix {
		c.pix[i] = color
	}
}

// Image converts the canvas to an opaque NRGBA image using the same
// channel scaling as the PPM writer.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.pix[y*c.Width+x]
			i := img.PixOffset(x, y)
			img.Pix[i] = channel(p.Red())
			img.Pix[i+1] = channel(p.Green())
			img.Pix[i+2] = channel(p.Blue())
			img.Pix[i+3] = 255
		}
	}
	return img
}
