package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/bodgit/vgaframe"
	"github.com/bodgit/vgaframe/frame"
	"github.com/bodgit/vgaframe/resize"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newConverter(c *cli.Context) (*vgaframe.Converter, error) {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	return vgaframe.New(c.String("db"), logger,
		vgaframe.Geometry(c.Int("width"), c.Int("height")),
		vgaframe.Resizer(c.String("resize")),
		vgaframe.Colors(c.Int("colors")),
	)
}

// twoArgs wraps a converter method taking a source and destination file
func twoArgs(fn func(*vgaframe.Converter, string, string) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() < 2 {
			cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
		}

		m, err := newConverter(c)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		defer m.Close()

		if err := fn(m, c.Args().Get(0), c.Args().Get(1)); err != nil {
			return cli.NewExitError(err, 1)
		}

		return nil
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "vgaframe"
	app.Usage = "12-bit VGA frame buffer image utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"VGAFRAME_DB"},
			Usage:   "path to frame cache database, disabled if empty",
		},
		&cli.IntFlag{
			Name:  "width",
			Value: frame.DefaultWidth,
			Usage: "frame width in pixels",
		},
		&cli.IntFlag{
			Name:  "height",
			Value: frame.DefaultHeight,
			Usage: "frame height in pixels",
		},
		&cli.StringFlag{
			Name:    "resize",
			EnvVars: []string{"VGAFRAME_RESIZE"},
			Value:   resize.Default,
			Usage:   fmt.Sprintf("resampler, one of %s", strings.Join(resize.Names(), ", ")),
		},
		&cli.IntFlag{
			Name:  "colors",
			Usage: "reduce images to at most this many colors, 0 to disable",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert an image to a raw frame",
			Description: "The image is scaled to the frame size and each pixel packed as 0000RRRRGGGGBBBB, little-endian.",
			ArgsUsage:   "IMAGE BIN",
			Action:      twoArgs((*vgaframe.Converter).ConvertImage),
		},
		{
			Name:        "mem",
			Usage:       "Convert a raw frame to a memory initialization file",
			Description: "Each word is written as four uppercase hexadecimal digits, one per line.",
			ArgsUsage:   "BIN MEM",
			Action:      twoArgs((*vgaframe.Converter).BinToMem),
		},
		{
			Name:        "reverse",
			Usage:       "Convert a raw frame back to an image",
			Description: "The output format is chosen by extension: png, jpg, gif, bmp or tiff.",
			ArgsUsage:   "BIN IMAGE",
			Action:      twoArgs((*vgaframe.Converter).BinToImage),
		},
		{
			Name:        "scan",
			Usage:       "Convert every image in a directory tree",
			Description: "A .bin and .mem file is written next to each image found.",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				if err := m.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "purge",
			Usage: "Remove every frame from the cache",
			Action: func(c *cli.Context) error {
				m, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				n, err := m.PurgeCache()
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				fmt.Printf("Removed %d frames\n", n)

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
