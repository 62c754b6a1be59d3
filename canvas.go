package main

import (
	"strings"

	"deskfolio/internal/geom"
)

// cell is one character of the composed frame.
type cell struct {
	ch    rune
	style cellStyle
}

// screen is an off-screen frame. Everything is drawn into it back to front,
// then it is rendered as styled lines for the terminal or exported as PNG.
type screen struct {
	width  int
	height int
	cells  [][]cell
}

func newScreen(width, height int, base cellStyle) *screen {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s := &screen{width: width, height: height, cells: make([][]cell, height)}
	for y := range s.cells {
		s.cells[y] = make([]cell, width)
		for x := range s.cells[y] {
			s.cells[y][x] = cell{ch: ' ', style: base}
		}
	}
	return s
}

func (s *screen) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

// Set writes one cell, ignoring coordinates off the frame.
func (s *screen) Set(x, y int, ch rune, st cellStyle) {
	if s.inside(x, y) {
		s.cells[y][x] = cell{ch: ch, style: st}
	}
}

// At returns the cell at x, y.
func (s *screen) At(x, y int) (cell, bool) {
	if !s.inside(x, y) {
		return cell{}, false
	}
	return s.cells[y][x], true
}

// Fill paints r with ch.
func (s *screen) Fill(r geom.Rect, ch rune, st cellStyle) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, ch, st)
		}
	}
}

// DrawText writes text starting at x, y and clips it to maxWidth cells.
// A negative maxWidth means no limit. It returns the columns written.
func (s *screen) DrawText(x, y int, text string, maxWidth int, st cellStyle) int {
	n := 0
	for _, r := range text {
		if maxWidth >= 0 && n >= maxWidth {
			break
		}
		s.Set(x+n, y, r, st)
		n++
	}
	return n
}

type borderSet struct {
	tl, tr, bl, br, h, v rune
}

var (
	singleBorder = borderSet{'┌', '┐', '└', '┘', '─', '│'}
	doubleBorder = borderSet{'╔', '╗', '╚', '╝', '═', '║'}
)

// DrawBox outlines r. Active boxes use a double line.
func (s *screen) DrawBox(r geom.Rect, active bool, st cellStyle) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	b := singleBorder
	if active {
		b = doubleBorder
	}
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.Set(x, r.Y, b.h, st)
		s.Set(x, bottom, b.h, st)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Set(r.X, y, b.v, st)
		s.Set(right, y, b.v, st)
	}
	s.Set(r.X, r.Y, b.tl, st)
	s.Set(right, r.Y, b.tr, st)
	s.Set(r.X, bottom, b.bl, st)
	s.Set(right, bottom, b.br, st)
}

// Render turns the frame into terminal lines, styling each run of cells
// that share a style in one go.
func (s *screen) Render() []string {
	out := make([]string, s.height)
	for y, row := range s.cells {
		var line, run strings.Builder
		var current cellStyle
		flush := func() {
			if run.Len() > 0 {
				line.WriteString(current.style().Render(run.String()))
				run.Reset()
			}
		}
		for x, c := range row {
			if x == 0 || c.style != current {
				flush()
				current = c.style
			}
			run.WriteRune(c.ch)
		}
		flush()
		out[y] = line.String()
	}
	return out
}

// PlainLines returns the frame's characters without styling.
func (s *screen) PlainLines() []string {
	out := make([]string, s.height)
	for y, row := range s.cells {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.ch)
		}
		out[y] = b.String()
	}
	return out
}
