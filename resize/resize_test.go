package resize

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(r image.Rectangle, c color.Color) *image.RGBA {
	m := image.NewRGBA(r)
	draw.Draw(m, r, image.NewUniform(c), image.Point{}, draw.Src)
	return m
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		r, err := New(name)
		require.NoError(t, err)
		assert.NotNil(t, r)
	}

	_, err := New("bogus")
	assert.Error(t, err)

	assert.Contains(t, Names(), Default)
}

func TestResize(t *testing.T) {
	c := color.RGBA{0x80, 0x40, 0xff, 0xff}
	src := uniform(image.Rect(0, 0, 64, 48), c)
	size := image.Pt(16, 12)

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			r, err := New(name)
			require.NoError(t, err)

			m := r.Resize(src, size)
			assert.Equal(t, size, m.Bounds().Size())

			// A flat image stays flat, give or take rounding
			cr, cg, cb, _ := m.At(m.Bounds().Min.X+8, m.Bounds().Min.Y+6).RGBA()
			assert.InDelta(t, 0x80, cr>>8, 1)
			assert.InDelta(t, 0x40, cg>>8, 1)
			assert.InDelta(t, 0xff, cb>>8, 1)
		})
	}
}

func TestFit(t *testing.T) {
	r, err := New(Default)
	require.NoError(t, err)

	src := uniform(image.Rect(0, 0, 8, 4), color.White)
	assert.Same(t, src, Fit(r, src, image.Pt(8, 4)))

	m := Fit(r, src, image.Pt(4, 2))
	assert.Equal(t, image.Pt(4, 2), m.Bounds().Size())

	offset := uniform(image.Rect(2, 2, 10, 6), color.White)
	m = Fit(r, offset, image.Pt(8, 4))
	assert.NotSame(t, offset, m)
	assert.Equal(t, image.Pt(8, 4), m.Bounds().Size())
}
