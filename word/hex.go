package word

import (
	"bufio"
	"fmt"
	"io"
)

// HexLines formats each word as four uppercase hexadecimal digits.
func HexLines(words []Word) []string {
	lines := make([]string, len(words))
	for i, w := range words {
		lines[i] = fmt.Sprintf("%04X", uint16(w))
	}
	return lines
}

// WriteHex writes words to w as a memory initialization file, one
// newline-terminated word per line.
func WriteHex(w io.Writer, words []Word) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := fmt.Fprintf(bw, "%04X\n", uint16(word)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
