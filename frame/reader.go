package frame

import (
	"image"
	"io"

	"github.com/bodgit/vgaframe/word"
)

type decoder struct {
	width, height int
	frame         word.Frame
}

func (d *decoder) decode(r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	d.frame.Width, d.frame.Height = d.width, d.height
	return d.frame.UnmarshalBinary(b)
}

// Decode reads a width by height frame from r and returns it as an Image.
// A word.FormatError is returned if r does not hold exactly one frame.
func Decode(r io.Reader, width, height int) (*Image, error) {
	d := decoder{width: width, height: height}
	if err := d.decode(r); err != nil {
		return nil, err
	}
	return &Image{Frame: &d.frame}, nil
}

// DecodeConfig checks that r holds exactly one width by height frame and
// returns its color model and dimensions.
func DecodeConfig(r io.Reader, width, height int) (image.Config, error) {
	d := decoder{width: width, height: height}
	if err := d.decode(r); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: Model,
		Width:      width,
		Height:     height,
	}, nil
}
