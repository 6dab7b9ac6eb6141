package word

import (
	"encoding/binary"
	"fmt"
)

// MarshalWords serializes words as consecutive little-endian 16-bit values.
func MarshalWords(words []Word) []byte {
	b := make([]byte, len(words)*Size)
	for i, w := range words {
		binary.LittleEndian.PutUint16(b[i*Size:], uint16(w))
	}
	return b
}

// UnmarshalWords reads a width by height frame of little-endian 16-bit words
// from b. The buffer must be exactly the size of the frame.
func UnmarshalWords(b []byte, width, height int) ([]Word, error) {
	n, err := frameLength(width, height)
	if err != nil {
		return nil, err
	}

	if len(b)%Size != 0 {
		return nil, FormatError(fmt.Sprintf("odd length %d", len(b)))
	}
	if len(b) != n*Size {
		return nil, FormatError(fmt.Sprintf("expected %d bytes for a %dx%d frame, got %d", n*Size, width, height, len(b)))
	}

	words := make([]Word, n)
	for i := range words {
		words[i] = Word(binary.LittleEndian.Uint16(b[i*Size:]))
	}
	return words, nil
}

// Frame is a row-major frame of words with its agreed geometry. It
// implements the encoding.BinaryMarshaler and encoding.BinaryUnmarshaler
// interfaces.
type Frame struct {
	Width  int
	Height int
	Words  []Word
}

// NewFrame returns a zeroed (black) frame.
func NewFrame(width, height int) (*Frame, error) {
	n, err := frameLength(width, height)
	if err != nil {
		return nil, err
	}
	return &Frame{
		Width:  width,
		Height: height,
		Words:  make([]Word, n),
	}, nil
}

// MarshalBinary encodes the frame into its raw binary form
func (f *Frame) MarshalBinary() ([]byte, error) {
	n, err := frameLength(f.Width, f.Height)
	if err != nil {
		return nil, err
	}
	if len(f.Words) != n {
		return nil, FormatError(fmt.Sprintf("%d words for a %dx%d frame", len(f.Words), f.Width, f.Height))
	}
	return MarshalWords(f.Words), nil
}

// UnmarshalBinary decodes the frame from raw binary form using the already
// set Width and Height
func (f *Frame) UnmarshalBinary(b []byte) error {
	words, err := UnmarshalWords(b, f.Width, f.Height)
	if err != nil {
		return err
	}
	f.Words = words
	return nil
}
