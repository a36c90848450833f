// Package render draws encoded symbols as images.
package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	gs1128go "github.com/ericlevine/gs1128go"
)

// Bitmap is a rendered 1D symbol. It implements image.Image, magnifying the
// module sequence by the largest whole multiple that fits the requested
// width and centring it horizontally.
type Bitmap struct {
	modules     []int
	width       int
	height      int
	multiple    int
	leftPadding int
}

// New renders a symbol into a Bitmap of width x height pixels. A width
// smaller than the symbol's module count (quiet zones included) is widened
// to fit at one pixel per module; height is clamped to a minimum of 1.
func New(symbol *gs1128go.Symbol, width, height int) *Bitmap {
	inputWidth := symbol.Width()
	if width < inputWidth {
		width = inputWidth
	}
	if height < 1 {
		height = 1
	}
	multiple := width / inputWidth
	return &Bitmap{
		modules:     symbol.Modules,
		width:       width,
		height:      height,
		multiple:    multiple,
		leftPadding: (width - inputWidth*multiple) / 2,
	}
}

func (b *Bitmap) dark(x int) bool {
	if x < b.leftPadding {
		return false
	}
	i := (x - b.leftPadding) / b.multiple
	return i < len(b.modules) && b.modules[i] == 1
}

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model {
	return color.Gray16Model
}

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements image.Image.
func (b *Bitmap) At(x, y int) color.Color {
	if b.dark(x) {
		return color.Black
	}
	return color.White
}

// WritePNG writes the bitmap to w as a PNG image.
func WritePNG(w io.Writer, b *Bitmap) error {
	return png.Encode(w, b)
}

// WritePBM writes the bitmap to w as a netpbm P4 (raw bitmap) image, for
// use with netpbm. In P4, 1 is black.
func WritePBM(w io.Writer, b *Bitmap) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P4\n%d %d\n", b.width, b.height); err != nil {
		return err
	}
	row := make([]byte, (b.width+7)/8)
	for x := 0; x < b.width; x++ {
		if b.dark(x) {
			row[x/8] |= 0x80 >> (x % 8)
		}
	}
	for y := 0; y < b.height; y++ {
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}
