/*
Package vgaframe is a library for preparing still images for a 12-bit VGA
frame buffer held in SDRAM or FPGA block RAM.

Images are scaled to a fixed frame, packed into 16-bit 0000RRRRGGGGBBBB
words and written either as a raw little-endian binary file or as a memory
initialization file of hexadecimal words. Raw frames can also be turned back
into ordinary images to preview what the hardware will display.
*/
package vgaframe

import (
	"errors"
	"fmt"
	"log"

	"github.com/bodgit/vgaframe/frame"
	"github.com/bodgit/vgaframe/resize"
)

const (
	minColors = 2
	maxColors = 256
)

// Converter converts between image files and raw frame files.
type Converter struct {
	db     *FrameDB
	logger *log.Logger

	width, height int
	resizer       resize.Resizer
	resizerName   string
	colors        int
}

// Option configures a Converter.
type Option func(*Converter) error

// Geometry sets the frame size, the default is 640 by 480.
func Geometry(width, height int) Option {
	return func(c *Converter) error {
		if width < 1 || height < 1 {
			return fmt.Errorf("invalid geometry %dx%d", width, height)
		}
		c.width, c.height = width, height
		return nil
	}
}

// Resizer chooses the named resampler used to scale images to the frame
// size.
func Resizer(name string) Option {
	return func(c *Converter) error {
		r, err := resize.New(name)
		if err != nil {
			return err
		}
		c.resizer, c.resizerName = r, name
		return nil
	}
}

// Colors reduces each image to at most n colors before packing it. Zero
// disables the reduction.
func Colors(n int) Option {
	return func(c *Converter) error {
		if n != 0 && (n < minColors || n > maxColors) {
			return fmt.Errorf("colors must be between %d and %d", minColors, maxColors)
		}
		c.colors = n
		return nil
	}
}

// New returns a Converter. If db is not empty it names an SQLite database
// used to cache converted frames.
func New(db string, logger *log.Logger, options ...Option) (*Converter, error) {
	if logger == nil {
		return nil, errors.New("nil logger")
	}

	c := &Converter{
		logger: logger,
		width:  frame.DefaultWidth,
		height: frame.DefaultHeight,
	}

	if err := Resizer(resize.Default)(c); err != nil {
		return nil, err
	}

	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}

	if db != "" {
		var err error
		if c.db, err = NewFrameDB(db); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Close releases the frame cache, if any.
func (c *Converter) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// PurgeCache empties the frame cache and returns the number of frames
// removed.
func (c *Converter) PurgeCache() (int64, error) {
	if c.db == nil {
		return 0, errors.New("no frame cache configured")
	}
	return c.db.Purge()
}
