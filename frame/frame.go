/*
Package frame implements a decoder and encoder for raw 12-bit VGA frame
files.

A frame file has no header. It is a row-major sequence of little-endian
16-bit words, one per pixel, each laid out as 0000RRRRGGGGBBBB. The width and
height are not stored so they must be supplied when decoding; by convention
a frame is 640 by 480 pixels which makes the file exactly 614400 bytes.

The same words can also be written as a memory initialization file, one
four digit uppercase hexadecimal word per line.
*/
package frame

const (
	// DefaultWidth is the conventional frame width in pixels
	DefaultWidth = 640
	// DefaultHeight is the conventional frame height in pixels
	DefaultHeight = 480
)
