package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"deskfolio/internal/layout"
)

// ExportPNG draws the frame to filename, one cell per CellWidthPx x
// CellHeightPx block.
func (s *screen) ExportPNG(filename string) error {
	if s.width == 0 || s.height == 0 {
		return fmt.Errorf("nothing to export")
	}

	charWidth := float64(layout.CellWidthPx)
	charHeight := float64(layout.CellHeightPx)

	dc := gg.NewContext(s.width*layout.CellWidthPx, s.height*layout.CellHeightPx)
	dc.SetColor(color.Black)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	for y, row := range s.cells {
		for x, c := range row {
			px, py := float64(x)*charWidth, float64(y)*charHeight
			if bg, ok := parseHex(c.style.Bg); ok {
				dc.SetColor(bg)
				dc.DrawRectangle(px, py, charWidth, charHeight)
				dc.Fill()
			}
			if c.ch == ' ' {
				continue
			}
			fg, ok := parseHex(c.style.Fg)
			if !ok {
				fg = color.RGBA{R: 0xE6, G: 0xED, B: 0xF3, A: 0xFF}
			}
			if c.style.Faint {
				dc.SetColor(color.NRGBA{R: fg.R, G: fg.G, B: fg.B, A: 0x99})
			} else {
				dc.SetColor(fg)
			}
			dc.DrawString(string(c.ch), px, py+charHeight-4)
		}
	}

	return dc.SavePNG(filename)
}

// parseHex reads "#RRGGBB".
func parseHex(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, true
}

func snapshotName(now time.Time) string {
	return "deskfolio-" + now.Format("20060102-150405") + ".png"
}
