// Package layout classifies the terminal viewport and places desktop icons.
package layout

import (
	"deskfolio/internal/drag"
	"deskfolio/internal/geom"
)

// Pixel size assumed for one terminal cell when a pixel figure is needed.
const (
	CellWidthPx  = 8
	CellHeightPx = 16
)

// DefaultNarrowThreshold is the column count below which the viewport is
// treated as narrow (768 px at CellWidthPx).
const DefaultNarrowThreshold = 768 / CellWidthPx

// TaskbarRows is the height reserved at the bottom of the screen.
const TaskbarRows = 1

// Viewport is the terminal size in cells.
type Viewport struct {
	Width     int
	Height    int
	Threshold int
}

// Narrow reports whether the viewport is below the narrow threshold.
func (v Viewport) Narrow() bool {
	threshold := v.Threshold
	if threshold <= 0 {
		threshold = DefaultNarrowThreshold
	}
	return v.Width < threshold
}

// Desktop returns the area above the taskbar.
func (v Viewport) Desktop() geom.Rect {
	h := v.Height - TaskbarRows
	if h < 0 {
		h = 0
	}
	return geom.R(0, 0, v.Width, h)
}

// Bounds returns the drag bounds for the whole screen with the taskbar
// reserved at the bottom.
func (v Viewport) Bounds() drag.Bounds {
	return drag.Bounds{Width: v.Width, Height: v.Height, BottomInset: TaskbarRows}
}

// Pixels returns the viewport size in pixels.
func (v Viewport) Pixels() (int, int) {
	return v.Width * CellWidthPx, v.Height * CellHeightPx
}

// Grid is the icon spacing for one viewport class.
type Grid struct {
	Cell    geom.Size
	Icon    geom.Size
	Padding geom.Point
}

var (
	wideGrid = Grid{
		Cell:    geom.Size{Width: 14, Height: 6},
		Icon:    geom.Size{Width: 12, Height: 5},
		Padding: geom.Point{X: 2, Y: 1},
	}
	narrowGrid = Grid{
		Cell:    geom.Size{Width: 9, Height: 5},
		Icon:    geom.Size{Width: 8, Height: 4},
		Padding: geom.Point{X: 2, Y: 1},
	}
)

// GridFor returns the icon grid for a viewport class.
func GridFor(narrow bool) Grid {
	if narrow {
		return narrowGrid
	}
	return wideGrid
}

// PerRow returns how many icons fit on one row, never less than one.
func (g Grid) PerRow(width int) int {
	n := (width - 2*g.Padding.X) / g.Cell.Width
	if n < 1 {
		n = 1
	}
	return n
}

// Place returns the position of the icon at index.
func (g Grid) Place(index, width int) geom.Point {
	per := g.PerRow(width)
	col, row := index%per, index/per
	return geom.Point{
		X: col*g.Cell.Width + g.Padding.X,
		Y: row*g.Cell.Height + g.Padding.Y,
	}
}

// Icons holds desktop icon positions. Positions are laid out on a grid the
// first time the viewport is seen and again whenever the viewport class
// changes; in between, user drags override them.
type Icons struct {
	ids    []string
	pos    map[string]geom.Point
	narrow bool
	laid   bool
}

// NewIcons creates an icon set in display order.
func NewIcons(ids []string) *Icons {
	return &Icons{
		ids: append([]string(nil), ids...),
		pos: make(map[string]geom.Point, len(ids)),
	}
}

// IDs returns the icon ids in display order.
func (ic *Icons) IDs() []string {
	return ic.ids
}

// Sync applies a new viewport. It reports true when the grid was rebuilt.
// Otherwise existing positions are clamped back on screen.
func (ic *Icons) Sync(v Viewport) bool {
	narrow := v.Narrow()
	if !ic.laid || narrow != ic.narrow {
		ic.narrow, ic.laid = narrow, true
		g := GridFor(narrow)
		for i, id := range ic.ids {
			ic.pos[id] = g.Place(i, v.Width)
		}
		return true
	}
	size := ic.Grid().Icon
	for id, p := range ic.pos {
		ic.pos[id] = drag.Clamp(p, size, v.Bounds())
	}
	return false
}

// Narrow reports the viewport class of the current layout.
func (ic *Icons) Narrow() bool {
	return ic.narrow
}

// Grid returns the grid of the current layout.
func (ic *Icons) Grid() Grid {
	return GridFor(ic.narrow)
}

// Position returns the icon's top-left corner.
func (ic *Icons) Position(id string) (geom.Point, bool) {
	p, ok := ic.pos[id]
	return p, ok
}

// Set overrides an icon position.
func (ic *Icons) Set(id string, p geom.Point) {
	if _, ok := ic.pos[id]; ok {
		ic.pos[id] = p
	}
}

// Rect returns the icon's hit area.
func (ic *Icons) Rect(id string) geom.Rect {
	p := ic.pos[id]
	return geom.Rect{Point: p, Size: ic.Grid().Icon}
}

// HitTest returns the icon under p. Later icons are drawn on top and win.
func (ic *Icons) HitTest(p geom.Point) (string, bool) {
	for i := len(ic.ids) - 1; i >= 0; i-- {
		id := ic.ids[i]
		if ic.Rect(id).Contains(p) {
			return id, true
		}
	}
	return "", false
}
