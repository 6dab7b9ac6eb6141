package frame

import (
	"errors"
	"image"
	"io"

	"github.com/bodgit/vgaframe/word"
)

var errEmpty = errors.New("frame: nil image")

func words(m image.Image) ([]word.Word, error) {
	if m == nil {
		return nil, errEmpty
	}

	// Already packed, no need to quantize again
	if fm, ok := m.(*Image); ok {
		return fm.Frame.Words, nil
	}

	b := m.Bounds()
	return word.EncodeFrame(Pixels(m), b.Dx(), b.Dy())
}

// Encode writes the Image m to w as a raw frame. The frame size is the size
// of m; resizing to a fixed geometry is up to the caller.
func Encode(w io.Writer, m image.Image) error {
	ws, err := words(m)
	if err != nil {
		return err
	}

	_, err = w.Write(word.MarshalWords(ws))
	return err
}

// EncodeHex writes the Image m to w as a memory initialization file.
func EncodeHex(w io.Writer, m image.Image) error {
	ws, err := words(m)
	if err != nil {
		return err
	}

	return word.WriteHex(w, ws)
}
