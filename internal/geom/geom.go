// Package geom holds the cell-space geometry shared by the window manager,
// the drag tracker and the desktop layout.
package geom

// Point is a top-left coordinate in terminal cells.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a width/height pair in terminal cells.
type Size struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is a positioned size.
type Rect struct {
	Point
	Size
}

// R builds a Rect.
func R(x, y, width, height int) Rect {
	return Rect{Point: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// Contains checks if a point is within the rect. The right and bottom edges
// are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Right returns the first column past the rect.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past the rect.
func (r Rect) Bottom() int { return r.Y + r.Height }
