package wallpaper

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Cell is one terminal cell drawn as an upper half block: Top is the
// foreground color, Bottom the background.
type Cell struct {
	Top    string
	Bottom string
}

// Art is a grid of cells indexed [row][col].
type Art [][]Cell

// Size returns the art dimensions in cells.
func (a Art) Size() (cols, rows int) {
	if len(a) == 0 {
		return 0, 0
	}
	return len(a[0]), len(a)
}

// At returns the cell at col, row.
func (a Art) At(col, row int) (Cell, bool) {
	if row < 0 || row >= len(a) || col < 0 || col >= len(a[row]) {
		return Cell{}, false
	}
	return a[row][col], true
}

// Render scales img to cols x (2*rows) pixels and packs each vertical pair
// of pixels into one cell.
func Render(img image.Image, cols, rows int) Art {
	if img == nil || cols <= 0 || rows <= 0 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	art := make(Art, rows)
	for y := 0; y < rows; y++ {
		row := make([]Cell, cols)
		for x := 0; x < cols; x++ {
			row[x] = Cell{
				Top:    Hex(dst.RGBAAt(x, 2*y)),
				Bottom: Hex(dst.RGBAAt(x, 2*y+1)),
			}
		}
		art[y] = row
	}
	return art
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
