package word

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexLines(t *testing.T) {
	assert.Equal(t, []string{"F008", "0000", "0ABC", "FFFF"}, HexLines([]Word{0xf008, 0x0000, 0x0abc, 0xffff}))
	assert.Empty(t, HexLines(nil))
}

func TestWriteHex(t *testing.T) {
	pixels := []Pixel{{255, 0, 136}, {1, 2, 3}}
	words, err := EncodeFrame(pixels, 2, 1)
	require.NoError(t, err)

	b := new(bytes.Buffer)
	require.NoError(t, WriteHex(b, words))
	assert.Equal(t, "0F08\n0000\n", b.String())

	b.Reset()
	require.NoError(t, WriteHex(b, nil))
	assert.Zero(t, b.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestWriteHexError(t *testing.T) {
	assert.Error(t, WriteHex(failingWriter{}, []Word{0x0123}))
}
