package frame

import (
	"image/color"

	"github.com/bodgit/vgaframe/word"
)

// Color is a packed 12-bit color.
type Color struct {
	W word.Word
}

// RGBA returns the color as it will be displayed, each nibble scaled to the
// full range.
func (c Color) RGBA() (r, g, b, a uint32) {
	p := c.W.Pixel()
	r = uint32(p.R)
	r |= r << 8
	g = uint32(p.G)
	g |= g << 8
	b = uint32(p.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func pixel(c color.Color) word.Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return word.Pixel{R: n.R, G: n.G, B: n.B}
}

func toColor(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	return Color{pixel(c).Word()}
}

// Model converts any color to a Color. Alpha is discarded rather than
// composited.
var Model = color.ModelFunc(toColor)
