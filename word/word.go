/*
Package word implements the packed 16-bit pixel format used to load a frame
into SDRAM or block RAM for a 12-bit VGA output.

Each pixel is stored as a single little-endian 16-bit word laid out as
0000RRRRGGGGBBBB. Encoding keeps the four most significant bits of each 8-bit
channel; decoding multiplies each nibble by 17 so that 0x0 maps to 0 and 0xF
maps to 255. The two scales are not inverses of each other so a round trip is
lossy, e.g. a red channel of 200 encodes to 0xC and decodes to 204.

A frame has no header; its width and height are agreed out of band, 640 by
480 by convention.
*/
package word

import "fmt"

const (
	nibbleMask = 0x0f
	redShift   = 8
	greenShift = 4
	blueShift  = 0

	// Scale expands a 4-bit nibble back to an 8-bit channel
	Scale = 17

	// Size is the number of bytes used to store one Word
	Size = 2
)

// Pixel is an 8-bit per channel RGB triple.
type Pixel struct {
	R, G, B uint8
}

// Word is a packed 0000RRRRGGGGBBBB pixel.
type Word uint16

// FormatError reports that a buffer cannot hold a whole frame.
type FormatError string

func (e FormatError) Error() string { return "word: invalid format: " + string(e) }

// RangeError reports a value outside of its valid range.
type RangeError struct {
	Name  string
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("word: %s out of range: %d", e.Name, e.Value)
}

func quantize(c uint8) Word {
	return Word(c >> 4)
}

func expand(n Word) uint8 {
	return uint8(n&nibbleMask) * Scale
}

// Word packs p, discarding the lower four bits of each channel.
func (p Pixel) Word() Word {
	return quantize(p.R)<<redShift | quantize(p.G)<<greenShift | quantize(p.B)<<blueShift
}

// Nibbles returns the 4-bit red, green and blue values. Bits 15 to 12 are
// ignored.
func (w Word) Nibbles() (r, g, b uint8) {
	return uint8(w >> redShift & nibbleMask), uint8(w >> greenShift & nibbleMask), uint8(w >> blueShift & nibbleMask)
}

// Pixel unpacks w, scaling each nibble to the full 8-bit range.
func (w Word) Pixel() Pixel {
	return Pixel{
		R: expand(w >> redShift),
		G: expand(w >> greenShift),
		B: expand(w >> blueShift),
	}
}

func frameLength(width, height int) (int, error) {
	if width < 0 {
		return 0, &RangeError{"width", width}
	}
	if height < 0 {
		return 0, &RangeError{"height", height}
	}
	n := width * height
	if width != 0 && (n/width != height || n > maxInt/Size) {
		return 0, &RangeError{"width*height", n}
	}
	return n, nil
}

const maxInt = int(^uint(0) >> 1)

// EncodeFrame packs a row-major frame of pixels into words. The number of
// pixels must match width*height.
func EncodeFrame(pixels []Pixel, width, height int) ([]Word, error) {
	n, err := frameLength(width, height)
	if err != nil {
		return nil, err
	}
	if len(pixels) != n {
		return nil, FormatError(fmt.Sprintf("%d pixels for a %dx%d frame", len(pixels), width, height))
	}

	words := make([]Word, n)
	for i, p := range pixels {
		words[i] = p.Word()
	}
	return words, nil
}

// DecodeFrame unpacks a row-major frame of words into pixels. The number of
// words must match width*height.
func DecodeFrame(words []Word, width, height int) ([]Pixel, error) {
	n, err := frameLength(width, height)
	if err != nil {
		return nil, err
	}
	if len(words) != n {
		return nil, FormatError(fmt.Sprintf("%d words for a %dx%d frame", len(words), width, height))
	}

	pixels := make([]Pixel, n)
	for i, w := range words {
		pixels[i] = w.Pixel()
	}
	return pixels, nil
}
