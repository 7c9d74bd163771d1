// internal/types/point.go
package types

// Point is a canvas-local cell coordinate.
// X grows to the right, Y grows downward, origin is the top-left cell.
type Point struct {
	X int
	Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the delta from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned box with inclusive bounds on every edge.
type Rect struct {
	Min Point
	Max Point
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
