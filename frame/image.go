package frame

import (
	"image"
	"image/color"

	"github.com/bodgit/vgaframe/word"
)

// Image is an in-memory frame. It implements the image.Image interface.
type Image struct {
	Frame *word.Frame
}

// NewImage returns a black frame image of the given size.
func NewImage(width, height int) (*Image, error) {
	f, err := word.NewFrame(width, height)
	if err != nil {
		return nil, err
	}
	return &Image{Frame: f}, nil
}

// ColorModel returns Model.
func (m *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the frame bounds, always anchored at (0, 0).
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Frame.Width, m.Frame.Height)
}

// At returns the color of the pixel at (x, y).
func (m *Image) At(x, y int) color.Color {
	return Color{m.WordAt(x, y)}
}

// WordAt returns the packed word at (x, y), or zero if it lies outside the
// frame.
func (m *Image) WordAt(x, y int) word.Word {
	if !(image.Pt(x, y).In(m.Bounds())) {
		return 0
	}
	return m.Frame.Words[y*m.Frame.Width+x]
}

// Set sets the pixel at (x, y) to c, quantized to 12 bits.
func (m *Image) Set(x, y int, c color.Color) {
	m.SetWord(x, y, Model.Convert(c).(Color).W)
}

// SetWord sets the packed word at (x, y).
func (m *Image) SetWord(x, y int, w word.Word) {
	if !(image.Pt(x, y).In(m.Bounds())) {
		return
	}
	m.Frame.Words[y*m.Frame.Width+x] = w
}

// Pixels returns the 8-bit RGB value of every pixel in m in row-major order.
func Pixels(m image.Image) []word.Pixel {
	b := m.Bounds()
	pixels := make([]word.Pixel, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			pixels = append(pixels, pixel(m.At(x, y)))
		}
	}
	return pixels
}
