/*
Package resize scales source images to the fixed frame geometry before they
are packed. Several resampling backends are available, selected by name.
*/
package resize

import (
	"fmt"
	"image"
	"sort"

	"github.com/disintegration/gift"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Resizer scales an image to exactly size, ignoring its aspect ratio.
type Resizer interface {
	Resize(m image.Image, size image.Point) image.Image
}

// Default is the name of the resizer used when none is chosen
const Default = "nfnt"

// Nfnt uses "github.com/nfnt/resize" with Lanczos3 resampling
type Nfnt struct{}

// Resize ...
func (Nfnt) Resize(m image.Image, size image.Point) image.Image {
	return resize.Resize(uint(size.X), uint(size.Y), m, resize.Lanczos3)
}

// Gift uses "github.com/disintegration/gift" with Lanczos resampling
type Gift struct{}

// Resize ...
func (Gift) Resize(m image.Image, size image.Point) image.Image {
	dst := image.NewNRGBA(image.Rectangle{Max: size})
	gift.New(gift.Resize(size.X, size.Y, gift.LanczosResampling)).Draw(dst, m)
	return dst
}

// Scaler uses one of the "golang.org/x/image/draw" scalers
type Scaler struct {
	draw.Scaler
}

// Resize ...
func (s Scaler) Resize(m image.Image, size image.Point) image.Image {
	dst := image.NewRGBA(image.Rectangle{Max: size})
	s.Scale(dst, dst.Bounds(), m, m.Bounds(), draw.Src, nil)
	return dst
}

var resizers = map[string]Resizer{
	"nfnt":       Nfnt{},
	"gift":       Gift{},
	"nearest":    Scaler{draw.NearestNeighbor},
	"approx":     Scaler{draw.ApproxBiLinear},
	"bilinear":   Scaler{draw.BiLinear},
	"catmullrom": Scaler{draw.CatmullRom},
}

// New returns the resizer registered under name.
func New(name string) (Resizer, error) {
	r, ok := resizers[name]
	if !ok {
		return nil, fmt.Errorf("resize: unknown resizer %q", name)
	}
	return r, nil
}

// Names returns the sorted names of every available resizer.
func Names() []string {
	names := make([]string, 0, len(resizers))
	for name := range resizers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fit returns m scaled to size. If m is already that size and anchored at
// (0, 0) it is returned unchanged.
func Fit(r Resizer, m image.Image, size image.Point) image.Image {
	if m.Bounds() == (image.Rectangle{Max: size}) {
		return m
	}
	return r.Resize(m, size)
}
