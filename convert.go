package vgaframe

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/vgaframe/frame"
	"github.com/bodgit/vgaframe/resize"
	"github.com/bodgit/vgaframe/word"
	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func (c *Converter) key(sum [sha1.Size]byte) FrameKey {
	return FrameKey{
		SHA1:    fmt.Sprintf("%X", sum),
		Width:   c.width,
		Height:  c.height,
		Resizer: c.resizerName,
		Colors:  c.colors,
	}
}

// Reduce the image to a palette of no more than n colors
func reduceColors(m image.Image, n int) image.Image {
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(m.Bounds(), q.Quantize(make(color.Palette, 0, n), m))
	draw.Draw(pm, pm.Bounds(), m, m.Bounds().Min, draw.Src)
	return pm
}

func (c *Converter) prepare(m image.Image) image.Image {
	m = resize.Fit(c.resizer, m, image.Pt(c.width, c.height))
	if c.colors > 0 {
		m = reduceColors(m, c.colors)
	}
	return m
}

func (c *Converter) frameFromFile(file string) (*word.Frame, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	key := c.key(sha1.Sum(b))

	if c.db != nil {
		data, err := c.db.FindFrame(key)
		if err != nil {
			return nil, err
		}
		if data != nil {
			f := &word.Frame{Width: c.width, Height: c.height}
			if err := f.UnmarshalBinary(data); err == nil {
				c.logger.Printf("Using cached frame for \"%s\"\n", file)
				return f, nil
			}
			c.logger.Printf("Ignoring corrupt cached frame for \"%s\"\n", file)
		}
	}

	m, format, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	c.logger.Printf("Decoded \"%s\" as %s, %dx%d\n", file, format, m.Bounds().Dx(), m.Bounds().Dy())

	m = c.prepare(m)

	words, err := word.EncodeFrame(frame.Pixels(m), c.width, c.height)
	if err != nil {
		return nil, err
	}
	f := &word.Frame{Width: c.width, Height: c.height, Words: words}

	if c.db != nil {
		data, err := f.MarshalBinary()
		if err != nil {
			return nil, err
		}
		if err := c.db.AddFrame(key, data); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeFile(file string, fn func(io.Writer) error) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return err
	}

	return f.Close()
}

func writeBinary(file string, f *word.Frame) error {
	return writeFile(file, func(w io.Writer) error {
		b, err := f.MarshalBinary()
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	})
}

func writeHex(file string, f *word.Frame) error {
	return writeFile(file, func(w io.Writer) error {
		return word.WriteHex(w, f.Words)
	})
}

func encodeImage(w io.Writer, m image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, m)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, m, &jpeg.Options{Quality: 95})
	case ".gif":
		return gif.Encode(w, m, nil)
	case ".bmp":
		return bmp.Encode(w, m)
	case ".tif", ".tiff":
		return tiff.Encode(w, m, nil)
	default:
		return fmt.Errorf("unsupported image format \"%s\"", ext)
	}
}

// ConvertImage decodes the image in src, scales it to the frame size and
// writes it to dst as a raw frame.
func (c *Converter) ConvertImage(src, dst string) error {
	f, err := c.frameFromFile(src)
	if err != nil {
		return err
	}

	if err := writeBinary(dst, f); err != nil {
		return err
	}
	c.logger.Printf("Binary file saved as \"%s\"\n", dst)

	return nil
}

func (c *Converter) readFrame(file string) (*word.Frame, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	f := &word.Frame{Width: c.width, Height: c.height}
	if err := f.UnmarshalBinary(b); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return f, nil
}

// BinToMem converts the raw frame in src to a memory initialization file
// in dst.
func (c *Converter) BinToMem(src, dst string) error {
	f, err := c.readFrame(src)
	if err != nil {
		return err
	}

	if err := writeHex(dst, f); err != nil {
		return err
	}
	c.logger.Printf("Memory file saved as \"%s\"\n", dst)

	return nil
}

// BinToImage converts the raw frame in src to an image in dst. The image
// format is chosen by the extension of dst.
func (c *Converter) BinToImage(src, dst string) error {
	f, err := c.readFrame(src)
	if err != nil {
		return err
	}

	b := new(bytes.Buffer)
	if err := encodeImage(b, &frame.Image{Frame: f}, filepath.Ext(dst)); err != nil {
		return err
	}

	if err := writeFile(dst, func(w io.Writer) error {
		_, err := b.WriteTo(w)
		return err
	}); err != nil {
		return err
	}
	c.logger.Printf("Image saved as \"%s\"\n", dst)

	return nil
}
